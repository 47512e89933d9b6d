package subcmd

import (
	"fmt"
	"os"

	"github.com/halfstep/chroma/note"
	"github.com/urfave/cli"
)

var Check = cli.Command{
	Name:      "check",
	Aliases:   []string{"c"},
	Usage:     "Checks whether note names are valid",
	ArgsUsage: "<note>...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: `Suppress per-note output, only set the exit status`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "check")
			os.Exit(1)
		}
		bad := 0
		for _, raw := range ctx.Args() {
			n, err := note.Parse(raw)
			if err != nil {
				bad++
				if !ctx.Bool("quiet") {
					fmt.Printf("%s: invalid (%v)\n", raw, err)
				}
				continue
			}
			if !ctx.Bool("quiet") {
				fmt.Printf("%s: %s\n", raw, n)
			}
		}
		if 0 < bad {
			return cli.NewExitError(fmt.Errorf("%d invalid note(s)", bad), 1)
		}
		return nil
	},
}
