package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	day         string
	category    string
	description string
	amount      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense in the ledger" }
func (*addCmd) Usage() string {
	return `xps add -c <category> -desc <description> -a <amount> [-d <date>]

  Records one expense and rewrites the ledger file. The date defaults to
  today and must be in strict YYYY-MM-DD form.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.day, "d", "", "Date of the expense (YYYY-MM-DD, defaults to today).")
	f.StringVar(&p.category, "c", "", "Category of the expense (e.g. food, travel).")
	f.StringVar(&p.description, "desc", "", "Description of the expense.")
	f.StringVar(&p.amount, "a", "", "Amount spent, a number greater than 0.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := date.Today()
	if p.day != "" {
		var err error
		day, err = date.Parse(p.day)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(p.amount))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: amount %q must be a number\n", p.amount)
		return subcommands.ExitUsageError
	}

	e, err := expenses.New(day, p.category, p.description, amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(e); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added expense to %s\n", ledger.Path())
	return subcommands.ExitSuccess
}
