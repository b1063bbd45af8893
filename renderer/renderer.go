// Package renderer turns ledger content into markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/expenses"
	"github.com/shopspring/decimal"
)

// Expenses renders the expense list as a markdown table, in list order.
func Expenses(list []expenses.Expense) string {
	if len(list) == 0 {
		return "No expenses recorded yet.\n"
	}
	var b strings.Builder
	b.WriteString("| # | Date | Category | Amount | Description |\n")
	b.WriteString("|--:|------|----------|-------:|-------------|\n")
	for i, e := range list {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			i+1, e.Date(), escapePipes(e.Category()), e.Amount(), escapePipes(e.Description()))
	}
	return b.String()
}

// Total renders a spending total, overall or for one category.
func Total(total decimal.Decimal, category, currency string) string {
	if category == "" {
		return fmt.Sprintf("Total spending: %s\n", Amount(total, currency))
	}
	return fmt.Sprintf("Total spending for %q: %s\n", category, Amount(total, currency))
}

// Amount formats an amount. With an empty currency the raw decimal is
// returned; otherwise the value is formatted with the currency's symbol
// and conventions (e.g. "EUR" gives "€13,50").
func Amount(v decimal.Decimal, currency string) string {
	if currency == "" {
		return v.StringFixed(2)
	}
	// to get a never nil currency, go through the money constructor
	cur := money.New(0, currency).Currency()
	return cur.Formatter().Format(v.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// escapePipes keeps user text from breaking the markdown table.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
