// Package cmd implements the CLI application to manage the expense ledger.
package cmd

import (
	"flag"
	"log"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", expenses.DefaultLedgerFile, "Path to the ledger file (JSON array of expenses)")

// Commands lists the subcommands a main package registers.
// A main package will call Register on each, and Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&totalCmd{},
	&clearCmd{},
	&importCmd{},
	&menuCmd{},
	&topicCmd{},
}

// loadLedger opens the app ledger file. A missing file yields an empty ledger.
func loadLedger() (*expenses.Ledger, error) {
	l := expenses.NewLedger(*ledgerFile)
	if err := l.Load(); err != nil {
		return nil, err
	}
	return l, nil
}

// loadLedgerOrEmpty opens the app ledger file, degrading to an empty
// ledger with a warning when the file is unreadable. Used by the
// interactive menu, where a corrupt file should not prevent startup.
func loadLedgerOrEmpty() *expenses.Ledger {
	l := expenses.NewLedger(*ledgerFile)
	if err := l.Load(); err != nil {
		log.Printf("warning: %v", err)
		log.Printf("starting with an empty ledger (the file may be corrupted)")
	}
	return l
}
