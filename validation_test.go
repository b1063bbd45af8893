package expenses

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAmount(t *testing.T) {
	testCases := []struct {
		name   string
		amount float64
		ok     bool
	}{
		{"positive", 5.0, true},
		{"small positive", 0.01, true},
		{"large", 1e9, true},
		{"zero", 0, false},
		{"negative", -3.5, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAmount(D(tc.amount))
			if tc.ok && err != nil {
				t.Errorf("ValidateAmount(%v) = %v, want nil", tc.amount, err)
			}
			if !tc.ok && err == nil {
				t.Errorf("ValidateAmount(%v) = nil, want error", tc.amount)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	if err := ValidateCategory("food"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateCategory(strings.Repeat("x", MaxCategoryLen)); err != nil {
		t.Errorf("category at the limit must be valid, got %v", err)
	}
	if err := ValidateCategory(""); err == nil {
		t.Error("empty category must be invalid")
	}
	if err := ValidateCategory(strings.Repeat("x", MaxCategoryLen+1)); err == nil {
		t.Error("category over the limit must be invalid")
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription("rice"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateDescription(strings.Repeat("y", MaxDescriptionLen)); err != nil {
		t.Errorf("description at the limit must be valid, got %v", err)
	}
	if err := ValidateDescription(""); err == nil {
		t.Error("empty description must be invalid")
	}
	if err := ValidateDescription(strings.Repeat("y", MaxDescriptionLen+1)); err == nil {
		t.Error("description over the limit must be invalid")
	}
}

func TestValidationError_Fields(t *testing.T) {
	err := ValidateAmount(D(0))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *ValidationError, got %T", err)
	}
	if verr.Field != "amount" {
		t.Errorf("Field = %q, want %q", verr.Field, "amount")
	}
	if !strings.Contains(verr.Error(), "amount") {
		t.Errorf("message %q must name the field", verr.Error())
	}
}
