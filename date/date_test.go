package date

import "testing"

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	valid := []struct {
		in   string
		want Date
	}{
		{"2025-12-16", New(2025, 12, 16)},
		{"2000-01-01", New(2000, 1, 1)},
		{"2024-02-29", New(2024, 2, 29)}, // leap day
		{"  2025-07-01  ", New(2025, 7, 1)},
		{"1999-12-31", New(1999, 12, 31)},
	}
	for _, tc := range valid {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	invalid := []string{
		"",
		"   ",
		"2025-7-1",     // not zero-padded
		"2025-07-1",    // day not zero-padded
		"25-07-01",     // two-digit year
		"2025/07/01",   // wrong separator
		"2025-13-01",   // month out of range
		"2025-02-30",   // day out of range
		"2025-00-10",   // zero month
		"2025-01-00",   // zero day
		"2025-01-02T00:00:00Z", // trailing time component
		"16-12-2025",
		"yesterday",
	}
	for _, in := range invalid {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestString_RoundTrip(t *testing.T) {
	d := New(2025, 3, 9)
	got, err := Parse(d.String())
	if err != nil {
		t.Fatalf("Parse(%q): %v", d.String(), err)
	}
	if got != d {
		t.Fatalf("round trip %v != %v", got, d)
	}
}

func TestOrdering(t *testing.T) {
	a := New(2025, 1, 31)
	b := New(2025, 2, 1)
	if !a.Before(b) || !b.After(a) {
		t.Errorf("expected %v < %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date cannot be before or after itself")
	}
}
