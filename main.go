package main

import (
	"os"

	"github.com/halfstep/chroma/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "chroma"
	app.Version = version
	app.Usage = "Parses, validates and transposes chromatic scale notes"
	app.Authors = []cli.Author{
		{
			Name: "halfstep",
		},
	}
	app.HelpName = "chroma"

	app.Commands = []cli.Command{
		subcmd.Parse,
		subcmd.Transpose,
		subcmd.Check,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
