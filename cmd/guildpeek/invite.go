package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/guildpeek/guildpeek/cdn"
	"github.com/guildpeek/guildpeek/invites"
	"github.com/guildpeek/guildpeek/util"

	"github.com/urfave/cli/v2"
)

var cmdLookup = &cli.Command{
	Name:      "lookup",
	Usage:     "fetch guild metadata for an invite code or link",
	ArgsUsage: `<code-or-link>`,
	Flags:     apiFlags,
	Action:    runLookup,
}

var cmdIcon = &cli.Command{
	Name:      "icon",
	Usage:     "print the guild icon URL for an invite code or link",
	ArgsUsage: `<code-or-link>`,
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:  "size",
			Usage: "requested pixel size",
		},
		&cli.BoolFlag{
			Name:  "animated",
			Usage: "probe for an animated variant, falling back to static",
		},
	}, apiFlags...),
	Action: runIcon,
}

var cmdCheckLink = &cli.Command{
	Name:      "check-link",
	Usage:     "extract the invite code from a share link",
	ArgsUsage: `<url>`,
	Action:    runCheckLink,
}

var cmdCheckURL = &cli.Command{
	Name:      "check-url",
	Usage:     "report whether a URL answers a HEAD request",
	ArgsUsage: `<url>`,
	Action:    runCheckURL,
}

// resolveCode accepts either a bare invite code or a full share link.
func resolveCode(arg string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("need to provide an invite code or link as argument")
	}
	if strings.Contains(arg, "/") {
		return invites.ExtractInviteCode(arg)
	}
	return arg, nil
}

func fetch(cctx *cli.Context) (*invites.Invite, error) {
	code, err := resolveCode(cctx.Args().First())
	if err != nil {
		return nil, err
	}
	c := invites.Client{
		Host: cctx.String("api-host"),
	}
	return c.FetchInvite(context.Background(), code)
}

func runLookup(cctx *cli.Context) error {
	inv, err := fetch(cctx)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func runIcon(cctx *cli.Context) error {
	inv, err := fetch(cctx)
	if err != nil {
		return err
	}
	size := cctx.Int("size")
	if cctx.Bool("animated") {
		u, err := inv.Guild.Icon.AnimatedURL(context.Background(), &cdn.AnimatedURLOpts{Size: size})
		if err != nil {
			return err
		}
		fmt.Println(u)
		return nil
	}
	fmt.Println(inv.Guild.Icon.URL(&cdn.URLOpts{Size: size}))
	return nil
}

func runCheckLink(cctx *cli.Context) error {
	code, err := invites.ExtractInviteCode(cctx.Args().First())
	if err != nil {
		return err
	}
	fmt.Println(code)
	return nil
}

func runCheckURL(cctx *cli.Context) error {
	arg := cctx.Args().First()
	if arg == "" {
		return fmt.Errorf("need to provide a URL as argument")
	}
	if util.URLReachable(context.Background(), nil, arg) {
		fmt.Println("reachable")
		return nil
	}
	fmt.Println("unreachable")
	return nil
}
