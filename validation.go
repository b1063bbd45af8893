package expenses

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field length limits, counted in runes after trimming whitespace.
const (
	MaxCategoryLen    = 30
	MaxDescriptionLen = 120
)

// ValidationError reports that a single expense field fails a business
// rule. It is always recoverable at the call site: the caller can ask
// the user for a corrected value.
type ValidationError struct {
	Field  string // the offending field: "date", "category", "description" or "amount"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateCategory checks a category already trimmed of surrounding whitespace.
func ValidateCategory(category string) error {
	if category == "" {
		return &ValidationError{Field: "category", Reason: "cannot be empty"}
	}
	if n := utf8.RuneCountInString(category); n > MaxCategoryLen {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("too long (%d characters, max %d)", n, MaxCategoryLen)}
	}
	return nil
}

// ValidateDescription checks a description already trimmed of surrounding whitespace.
func ValidateDescription(description string) error {
	if description == "" {
		return &ValidationError{Field: "description", Reason: "cannot be empty"}
	}
	if n := utf8.RuneCountInString(description); n > MaxDescriptionLen {
		return &ValidationError{Field: "description", Reason: fmt.Sprintf("too long (%d characters, max %d)", n, MaxDescriptionLen)}
	}
	return nil
}

// ValidateAmount checks that an amount is strictly positive. There is no
// upper bound and no currency-precision rounding: amounts are kept as-is.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}
	return nil
}
