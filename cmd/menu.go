package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "start an interactive menu session" }
func (*menuCmd) Usage() string {
	return `xps menu

  Starts an interactive session: add expenses, view them, and report
  totals from a numbered menu. Choice 5 exits.
`
}

func (p *menuCmd) SetFlags(f *flag.FlagSet) {}

func (p *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// a corrupt ledger file warns and starts empty rather than
	// preventing the session from opening.
	ledger := loadLedgerOrEmpty()
	return runMenu(os.Stdin, os.Stdout, ledger)
}

// runMenu drives the interactive loop. It reads from 'in' and prints to
// 'out' so that tests can script a whole session.
func runMenu(in io.Reader, out io.Writer, ledger *expenses.Ledger) subcommands.ExitStatus {
	fmt.Fprintln(out, "Welcome to the expense ledger")
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "\n==== Menu ====\n"+
			"1. Add Expense\n"+
			"2. View All Expenses\n"+
			"3. View Total Spending\n"+
			"4. View Total By Category\n"+
			"5. Exit\n"+
			"Please enter your choice: ")

		line, ok := readLine(scanner)
		if !ok {
			return subcommands.ExitSuccess // end of input ends the session
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Enter a number like 1, 2, 3...")
			continue
		}

		switch choice {
		case 1:
			addFlow(scanner, out, ledger)
		case 2:
			viewAllFlow(out, ledger)
		case 3:
			fmt.Fprint(out, renderer.Total(ledger.Total(), "", ""))
		case 4:
			totalByCategoryFlow(scanner, out, ledger)
		case 5:
			fmt.Fprintln(out, "Thanks for using the expense ledger.")
			return subcommands.ExitSuccess
		default:
			fmt.Fprintln(out, "Invalid choice. Pick from 1 to 5.")
		}
	}
}

// addFlow prompts for the four expense fields and records the expense.
// On any invalid field the whole flow restarts: every field is asked again.
func addFlow(scanner *bufio.Scanner, out io.Writer, ledger *expenses.Ledger) {
	for {
		fmt.Fprint(out, "Enter date (YYYY-MM-DD): ")
		rawDay, ok := readLine(scanner)
		if !ok {
			return
		}
		day, err := date.Parse(rawDay)
		if err != nil {
			fmt.Fprintln(out, "Invalid date. Use YYYY-MM-DD (example: 2025-12-16).")
			continue
		}

		fmt.Fprint(out, "Enter category (e.g. food, travel): ")
		category, ok := readLine(scanner)
		if !ok {
			return
		}
		fmt.Fprint(out, "Enter description: ")
		description, ok := readLine(scanner)
		if !ok {
			return
		}
		fmt.Fprint(out, "Enter amount: ")
		rawAmount, ok := readLine(scanner)
		if !ok {
			return
		}
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			fmt.Fprintln(out, "Error: amount must be a number.")
			fmt.Fprintln(out, "Please try again.")
			continue
		}

		e, err := expenses.New(day, category, description, amount)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			fmt.Fprintln(out, "Please try again.")
			continue
		}
		if err := ledger.Append(e); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(out, "Expense added successfully.")
		return
	}
}

func viewAllFlow(out io.Writer, ledger *expenses.Ledger) {
	items := ledger.Expenses()
	if len(items) == 0 {
		fmt.Fprintln(out, "No expenses recorded yet.")
		return
	}
	fmt.Fprintln(out, "\nList of all expenses:")
	for i, e := range items {
		fmt.Fprintf(out, "%3d. %s\n", i+1, e)
	}
}

func totalByCategoryFlow(scanner *bufio.Scanner, out io.Writer, ledger *expenses.Ledger) {
	fmt.Fprint(out, "Enter category to filter: ")
	category, ok := readLine(scanner)
	if !ok {
		return
	}
	if category == "" {
		fmt.Fprintln(out, "Category cannot be empty.")
		return
	}
	fmt.Fprint(out, renderer.Total(ledger.TotalFor(category), category, ""))
}

// readLine reads one trimmed line, reporting false on end of input.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
