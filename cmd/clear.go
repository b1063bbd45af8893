package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every expense from the ledger" }
func (*clearCmd) Usage() string {
	return `xps clear -f

  Empties the ledger and persists the now empty file. Refuses to run
  without -f.
`
}

func (p *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "f", false, "Confirm deleting every expense.")
}

func (p *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force {
		fmt.Fprintln(os.Stderr, "Error: clear deletes every expense, re-run with -f to confirm.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	n := ledger.Len()
	if err := ledger.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Cleared %d expenses from %s\n", n, ledger.Path())
	return subcommands.ExitSuccess
}
