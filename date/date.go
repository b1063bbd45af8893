// Package date provides a calendar day value type for the expense ledger.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format is the only accepted textual representation of a date, the
// ISO-8601 calendar date with zero-padded month and day.
const Format = "2006-01-02"

// Date represents a date with day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date in its canonical format.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date from a string. Surrounding whitespace is trimmed,
// then the string must match [Format] exactly: "2025-7-1" is rejected,
// only "2025-07-01" is accepted. Calendar validity is enforced, so
// "2025-02-30" or a month of 13 are errors.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Date{}, fmt.Errorf("empty date, want format %q", Format)
	}
	on, err := time.Parse(Format, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// MarshalJSON renders the date as a canonical json string.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
