package subcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/halfstep/chroma/log"
	"github.com/halfstep/chroma/note"
	"github.com/urfave/cli"
)

var Parse = cli.Command{
	Name:      "parse",
	Aliases:   []string{"p"},
	Usage:     "Parses note names (\"C#\", \"Ab\", \"d sharp\") into canonical notes",
	ArgsUsage: "<note>...",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "octave, o",
			Usage: fmt.Sprintf("Octave (%d..%d)", note.MinOctave, note.MaxOctave),
			Value: note.DefaultOctave,
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Prints notes in JSON format`,
		},
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
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "parse")
			os.Exit(1)
		}
		applyLogLevel(ctx)
		for _, raw := range ctx.Args() {
			letter, shift, err := note.ParseNoteString(raw)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			log.Debugf("%q -> letter %q, shift %q", raw, letter, shift)
			n, err := note.New(letter, shift, ctx.Int("octave"))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if ctx.Bool("json") {
				j, err := json.MarshalIndent(n, "", "  ")
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Println(string(j))
			} else {
				fmt.Println(n.String())
			}
		}
		return nil
	},
}

func applyLogLevel(ctx *cli.Context) {
	if ctx.Bool("debug") {
		log.Level = log.LogLevel_Debug
	} else if ctx.Bool("silent") {
		log.Level = log.LogLevel_None
	} else if ctx.Bool("quiet") {
		log.Level = log.LogLevel_Warn
	}
}
