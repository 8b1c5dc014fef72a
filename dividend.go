package fundsheet

import (
	"errors"
	"strings"

	"github.com/yhlin/fundsheet/date"
)

// Dividend is one distribution event, owned by the instrument code it was
// parsed under. Amount is always > 0; rows that fail the amount check are
// not retained.
type Dividend struct {
	Date   date.Date
	Amount float64
}

// ErrNoDividendColumns is the soft structural warning returned, together
// with an empty map, when the dividend sheet has no recognizable code or
// amount column. The caller should surface it as a warning, not abort:
// fund rows remain usable on their own.
var ErrNoDividendColumns = errors.New("fundsheet: no code or amount column in dividend sheet")

// ParseDividends aggregates a dividend sheet into a mapping from instrument
// code to its distribution events, insertion order as encountered.
//
// The sheet goes through the same tokenizer as the fund sheet, with a header
// search keyed on the dividend code/amount/date keyword sets. A row is kept
// only when its cleaned amount is strictly positive. A missing date column
// leaves events with the zero date, which later fails every range filter.
func ParseDividends(text string, kw Keywords) (map[string][]Dividend, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoSheet
	}

	rows := tokenize(text)
	headerAt := findDividendHeader(rows, kw)
	code, amount, when := classifyDividends(rows[headerAt], kw)

	if code < 0 || amount < 0 {
		return map[string][]Dividend{}, ErrNoDividendColumns
	}

	events := make(map[string][]Dividend)
	for i, fields := range rows {
		if i <= headerAt {
			continue
		}
		c := strings.ToUpper(cleanCell(cellAt(fields, code)))
		if c == "" {
			continue
		}
		a := ParseAmount(cellAt(fields, amount))
		if !a.Positive() {
			continue
		}
		events[c] = append(events[c], Dividend{
			Date:   date.Normalize(cellAt(fields, when)),
			Amount: a.Float(),
		})
	}
	return events, nil
}

// findDividendHeader scans the first rows for a dividend header: the first
// row matching a dividend code keyword, row 0 otherwise.
func findDividendHeader(rows [][]string, kw Keywords) int {
	limit := len(rows)
	if limit > headerWindow {
		limit = headerWindow
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if matchAny(strings.ToLower(cleanCell(cell)), kw.DividendCode) {
				return i
			}
		}
	}
	return 0
}
