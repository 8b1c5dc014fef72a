package fundsheet

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is the tagged result of cleaning a numeric spreadsheet cell:
// either a parsed value or "unparsable". Callers choose between strict
// handling (check OK) and lenient handling (Float returns 0 when unparsable)
// instead of re-implementing the fallback at each call site.
type Amount struct {
	value decimal.Decimal
	ok    bool
}

// amountCleaner strips currency symbols, percent signs and thousand
// separators commonly found in the exports.
var amountCleaner = strings.NewReplacer(
	"NT$", "",
	"$", "",
	"＄", "",
	"%", "",
	"％", "",
	",", "",
	"元", "",
	" ", "",
	" ", "",
)

// ParseAmount cleans a cell and parses it as a decimal number.
func ParseAmount(s string) Amount {
	s = amountCleaner.Replace(cleanCell(s))
	if s == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return Amount{value: d, ok: true}
}

// OK reports whether the cell parsed as a number.
func (a Amount) OK() bool { return a.ok }

// Decimal returns the parsed value, zero when unparsable.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// Float returns the parsed value as a float64, 0 when unparsable.
func (a Amount) Float() float64 { return a.value.InexactFloat64() }

// Positive reports whether the cell parsed as a number strictly greater than zero.
func (a Amount) Positive() bool { return a.ok && a.value.IsPositive() }

// round2 rounds to 2 decimal places, half up on the 3rd decimal, and returns
// the float64 every derived percentage is exposed as.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
