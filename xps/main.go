package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/expenses/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs and exits here when invoked by the
	// completion machinery, and is a no-op otherwise.
	completion().Complete("xps")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	jsonFiles := predict.Files("*.json")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"d":    predict.Nothing,
				"c":    predict.Nothing,
				"desc": predict.Nothing,
				"a":    predict.Nothing,
			}},
			"list": {},
			"total": {Flags: map[string]complete.Predictor{
				"c":        predict.Nothing,
				"currency": predict.Set{"EUR", "USD", "GBP", "JPY", "CHF"},
			}},
			"clear": {Flags: map[string]complete.Predictor{
				"f": predict.Nothing,
			}},
			"import": {Flags: map[string]complete.Predictor{
				"file":             jsonFiles,
				"date-path":        predict.Nothing,
				"category-path":    predict.Nothing,
				"description-path": predict.Nothing,
				"amount-path":      predict.Nothing,
			}},
			"menu":  {},
			"topic": {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": jsonFiles,
		},
	}
}
