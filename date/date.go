// Package date provides a day-granularity Date value and the tolerant
// normalizer used to read dates out of spreadsheet cells. Sheets in the wild
// mix 6-digit year-month codes, 8-digit day codes and slash, dot or dash
// separated text; Normalize accepts them all and never fails.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

const readDateFormat = "2006-1-2" // permissive read format (single-digit month/day allowed)

// Date represents a date with no lower than day granularity.
// The zero Date is the "unparsable" sentinel: it sorts before every real
// date and is excluded by every range filter.
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

// IsZero reports whether d is the unparsable sentinel.
func (d Date) IsZero() bool { return d == Date{} }

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

// Compare returns -1, 0 or 1 comparing d to x, usable with slices.SortFunc.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonths returns a new Date with the given number of months added.
func (d Date) AddMonths(i int) Date { return New(d.y, d.m+time.Month(i), d.d) }

// AddYears returns a new Date with the given number of years added.
func (d Date) AddYears(i int) Date { return New(d.y+i, d.m, d.d) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// normalizeFormats is the ladder of layouts tried by Normalize after
// separator rewriting. Single-digit layouts also accept zero-padded input.
var normalizeFormats = []string{
	"2006/1/2",
	"20060102",
	"2006/1",
}

// isDigits reports whether s is non-empty and made of ASCII digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Normalize converts heterogeneous spreadsheet date text into a Date.
//
// Exactly six digits are read as year(4)+month(2) with the day defaulted to
// the 1st, so "202503" yields 2025-03-01. Anything else has '.' and '-'
// rewritten to '/' and is tried against a small ladder of calendar layouts.
// Unparsable input returns the zero Date, never an error.
func Normalize(s string) Date {
	s = strings.TrimSpace(s)
	if len(s) == 6 && isDigits(s) {
		t, err := time.Parse("200601", s)
		if err != nil {
			return Date{}
		}
		return New(t.Year(), t.Month(), 1)
	}
	s = strings.NewReplacer(".", "/", "-", "/").Replace(s)
	for _, layout := range normalizeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return New(t.Date())
		}
	}
	return Date{}
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
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

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// UnmarshalYAML reads a Date from a yaml scalar, accepting the same lenient
// formats as Parse. Used by the holdings file loader.
func (j *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalYAML() (interface{}, error) { return j.String(), nil }

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Range represents a closed range of dates.
type Range struct{ From, To Date }

// NewRange returns the closed range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether d falls within the closed range.
// The zero Date is never contained, whatever the bounds.
func (r Range) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(r.From) && !d.After(r.To)
}
