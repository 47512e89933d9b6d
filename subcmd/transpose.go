package subcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/halfstep/chroma/log"
	"github.com/halfstep/chroma/note"
	"github.com/urfave/cli"
)

var Transpose = cli.Command{
	Name:      "transpose",
	Aliases:   []string{"t"},
	Usage:     "Transposes notes by a number of semitones",
	ArgsUsage: "<semitones> <note>...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: `Show debug messages`,
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: `Suppress information messages`,
		},
		cli.BoolFlag{
			Name:  "silent, Q",
			Usage: `Do not output any messages`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			cli.ShowCommandHelp(ctx, "transpose")
			os.Exit(1)
		}
		applyLogLevel(ctx)
		args := ctx.Args()
		semitones, err := strconv.Atoi(args[0])
		if err != nil {
			return cli.NewExitError(fmt.Errorf("semitones %q is not an integer", args[0]), 1)
		}
		for _, raw := range args[1:] {
			letter, shift, err := note.ParseNoteString(raw)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			p, err := note.ToAbstract(letter, shift)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			log.Debugf("%q -> %s (%d)", raw, p, int(p))
			fmt.Printf("%s -> %s\n", p, p.Add(semitones))
		}
		return nil
	},
}
