package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type totalCmd struct {
	category string
	currency string
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "report total spending, overall or by category" }
func (*totalCmd) Usage() string {
	return `xps total [-c <category>] [-currency <code>]

  Sums the amount of every expense, or only the expenses of one category.
  Category matching is case-insensitive. With -currency the total is
  formatted using that currency's conventions.
`
}

func (p *totalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Only sum expenses of this category.")
	f.StringVar(&p.currency, "currency", "", "Format the total in this ISO currency (e.g. EUR).")
}

func (p *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	category := strings.TrimSpace(p.category)
	total := ledger.Total()
	if category != "" {
		total = ledger.TotalFor(category)
	}

	fmt.Print(renderer.Total(total, category, p.currency))
	return subcommands.ExitSuccess
}
