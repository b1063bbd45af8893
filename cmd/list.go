package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all expenses in the ledger" }
func (*listCmd) Usage() string {
	return `xps list

  Lists every recorded expense, in the order they were added.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Expenses(ledger.Expenses()))
	return subcommands.ExitSuccess
}
