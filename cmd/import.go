package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type importCmd struct {
	file    string
	mapping expenses.ImportMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from another tool's JSON export" }
func (*importCmd) Usage() string {
	return `xps import -file <export.json> [-date-path <jsonpath>] [-category-path <jsonpath>] [-description-path <jsonpath>] [-amount-path <jsonpath>]

  Reads a JSON export and appends its expenses to the ledger. Each field
  is located with a JSONPath expression; the defaults match an array of
  expense-like objects. A single invalid row aborts the whole import.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	defaults := expenses.DefaultImportMapping()
	f.StringVar(&p.file, "file", "", "Path of the JSON export to import.")
	f.StringVar(&p.mapping.Date, "date-path", defaults.Date, "JSONPath selecting the date column.")
	f.StringVar(&p.mapping.Category, "category-path", defaults.Category, "JSONPath selecting the category column.")
	f.StringVar(&p.mapping.Description, "description-path", defaults.Description, "JSONPath selecting the description column.")
	f.StringVar(&p.mapping.Amount, "amount-path", defaults.Amount, "JSONPath selecting the amount column.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}

	src, err := os.Open(p.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}
	defer src.Close()

	imported, err := expenses.ImportExpenses(src, p.mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}
	if len(imported) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: nothing to import from %q.\n", p.file)
		return subcommands.ExitSuccess
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(imported...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d expenses into %s\n", len(imported), ledger.Path())
	return subcommands.ExitSuccess
}
