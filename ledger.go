package expenses

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultLedgerFile is the backing file used when no path is given.
const DefaultLedgerFile = "expenses.json"

// Ledger owns the in-memory list of expenses and its backing file. It is
// the sole writer of that file for the lifetime of the process; nothing
// guards against a second process writing the same path.
//
// Expenses are kept in insertion order: list order is display order.
type Ledger struct {
	path     string
	expenses []Expense
}

// NewLedger creates an empty ledger backed by the file at path, or by
// [DefaultLedgerFile] when path is empty. No file access happens until
// Load or Save is called.
func NewLedger(path string) *Ledger {
	if path == "" {
		path = DefaultLedgerFile
	}
	return &Ledger{path: path}
}

// Path returns the backing file path.
func (l *Ledger) Path() string { return l.path }

// Len returns the number of recorded expenses.
func (l *Ledger) Len() int { return len(l.expenses) }

// Append records expenses and immediately persists the whole ledger.
// When Save fails the in-memory append stands: memory and disk stay
// inconsistent until the next successful save. There is no rollback.
func (l *Ledger) Append(expenses ...Expense) error {
	l.expenses = append(l.expenses, expenses...)
	return l.Save()
}

// Expenses returns an independent snapshot of the recorded expenses in
// insertion order. Mutating the returned slice does not affect the ledger.
func (l *Ledger) Expenses() []Expense {
	return slices.Clone(l.expenses)
}

// Total sums the amount of every recorded expense. An empty ledger totals zero.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		total = total.Add(e.amount)
	}
	return total
}

// TotalFor sums the amount of expenses whose category equals the given
// one, compared case-insensitively after trimming the argument. An empty
// match totals zero.
func (l *Ledger) TotalFor(category string) decimal.Decimal {
	category = strings.TrimSpace(category)
	total := decimal.Zero
	for _, e := range l.expenses {
		if strings.EqualFold(e.category, category) {
			total = total.Add(e.amount)
		}
	}
	return total
}

// Clear drops every recorded expense and persists the now empty ledger.
func (l *Ledger) Clear() error {
	l.expenses = nil
	return l.Save()
}
