package expenses

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// Expense is one recorded spending event. It is an immutable value: both
// construction paths validate every field, so an Expense that exists is
// always well-formed. There are no setters, an update is a replacement.
type Expense struct {
	day         date.Date
	category    string
	description string
	amount      decimal.Decimal
}

// New builds a validated Expense. Category and description are trimmed of
// surrounding whitespace before validation.
func New(day date.Date, category, description string, amount decimal.Decimal) (Expense, error) {
	if day.IsZero() {
		return Expense{}, &ValidationError{Field: "date", Reason: "missing"}
	}
	category = strings.TrimSpace(category)
	description = strings.TrimSpace(description)
	if err := ValidateCategory(category); err != nil {
		return Expense{}, err
	}
	if err := ValidateDescription(description); err != nil {
		return Expense{}, err
	}
	if err := ValidateAmount(amount); err != nil {
		return Expense{}, err
	}
	return Expense{day: day, category: category, description: description, amount: amount}, nil
}

// Date returns the calendar day of the expense.
func (e Expense) Date() date.Date { return e.day }

// Category returns the trimmed category.
func (e Expense) Category() string { return e.category }

// Description returns the trimmed description.
func (e Expense) Description() string { return e.description }

// Amount returns the amount spent.
func (e Expense) Amount() decimal.Decimal { return e.amount }

// Equal reports whether two expenses carry exactly the same values.
func (e Expense) Equal(o Expense) bool {
	return e.day == o.day &&
		e.category == o.category &&
		e.description == o.description &&
		e.amount.Equal(o.amount)
}

func (e Expense) String() string {
	return fmt.Sprintf("%s | %-12s | %10s | %s", e.day, e.category, e.amount, e.description)
}

// FromRecord builds an Expense from an untrusted record, as decoded from
// the backing file or an import document. Every field is coerced and
// re-validated: the date through the strict calendar parse, the amount
// through a numeric parse, category and description stringified and
// trimmed. The first failure wins, and the error cites the bad value.
func FromRecord(rec map[string]any) (Expense, error) {
	day, err := date.Parse(stringify(rec["date"]))
	if err != nil {
		return Expense{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("cannot parse %v", rec["date"])}
	}
	amount, err := parseAmount(rec["amount"])
	if err != nil {
		return Expense{}, &ValidationError{Field: "amount", Reason: fmt.Sprintf("cannot parse %v", rec["amount"])}
	}
	category := strings.TrimSpace(stringify(rec["category"]))
	description := strings.TrimSpace(stringify(rec["description"]))

	if err := ValidateCategory(category); err != nil {
		return Expense{}, err
	}
	if err := ValidateDescription(description); err != nil {
		return Expense{}, err
	}
	if err := ValidateAmount(amount); err != nil {
		return Expense{}, err
	}
	return Expense{day: day, category: category, description: description, amount: amount}, nil
}

// stringify coerces an untyped record value to a string. A missing value
// becomes the empty string so that the field validators report it.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

// parseAmount coerces an untyped record value to a decimal amount.
func parseAmount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("missing amount")
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case decimal.Decimal:
		return n, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount type %T", v)
	}
}

// MarshalJSON renders the expense with a stable field order so that the
// backing file stays canonical.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.day)
	w.Append("category", e.category)
	w.Append("description", e.description)
	w.Append("amount", e.amount)
	return w.MarshalJSON()
}

var _ json.Marshaler = Expense{}
