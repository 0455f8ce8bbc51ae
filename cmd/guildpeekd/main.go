package main

import (
	"fmt"
	slogging "log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	_ "github.com/joho/godotenv/autoload"
)

var (
	slog    = slogging.New(slogging.NewJSONHandler(os.Stdout, nil))
	version = versioninfo.Short()
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:  "guildpeekd",
		Usage: "JSON preview service for invite metadata",
	}

	app.Commands = []*cli.Command{
		&cli.Command{
			Name:   "serve",
			Usage:  "run the server",
			Action: serve,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "bind",
					Usage:   "Specify the local IP/port to bind to",
					Value:   ":8600",
					EnvVars: []string{"GUILDPEEKD_BIND"},
				},
				&cli.StringFlag{
					Name:    "api-host",
					Usage:   "method, hostname, and port of the invite API",
					Value:   "https://discord.com/api",
					EnvVars: []string{"GUILDPEEK_API_HOST"},
				},
			},
		},
		&cli.Command{
			Name:  "version",
			Usage: "print version",
			Action: func(cctx *cli.Context) error {
				fmt.Println(version)
				return nil
			},
		},
	}

	return app.Run(args)
}
