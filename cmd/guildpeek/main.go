package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var apiFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "api-host",
		Usage:   "method, hostname, and port of the invite API",
		Value:   "https://discord.com/api",
		EnvVars: []string{"GUILDPEEK_API_HOST"},
	},
}

func run(args []string) error {

	app := cli.App{
		Name:    "guildpeek",
		Usage:   "lookup public guild metadata from invite codes",
		Version: versioninfo.Short(),
	}
	app.Commands = []*cli.Command{
		cmdLookup,
		cmdIcon,
		cmdCheckLink,
		cmdCheckURL,
	}
	return app.Run(args)
}
