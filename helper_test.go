package expenses

import (
	"testing"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// mustExpense is a helper for tests to create a valid expense from constants.
func mustExpense(t *testing.T, day, category, description string, amount float64) Expense {
	t.Helper()
	e, err := New(date.MustParse(day), category, description, decimal.NewFromFloat(amount))
	if err != nil {
		t.Fatalf("cannot create expense %s %s: %v", day, description, err)
	}
	return e
}

// D is a helper for tests to create a decimal from a float constant.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
