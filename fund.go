package fundsheet

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/yhlin/fundsheet/date"
)

// Market labels. Listed is the default; bonds and instruments whose market
// cell says otherwise trade over the counter.
const (
	MarketListed = "listed"
	MarketOTC    = "OTC"
)

// ErrNoSheet is the hard failure for caller misuse: no input text at all.
var ErrNoSheet = errors.New("fundsheet: no sheet text supplied")

// ErrNoCodeColumn is the soft structural warning returned, together with an
// empty result, when no instrument code could be located anywhere in the
// sheet. Partial data from the other sheet is still usable.
var ErrNoCodeColumn = errors.New("fundsheet: no instrument code column found")

// codePattern is the positional fallback for instrument codes: 4 to 6 digits
// with an optional trailing letter.
var codePattern = regexp.MustCompile(`^\d{4,6}[A-Za-z]?$`)

// PricePoint is one dated close of a fund, labeled with the raw header text
// of its column.
type PricePoint struct {
	Label string
	Price float64
}

// Fund is one normalized fund record, rebuilt fresh on every ingestion.
type Fund struct {
	Code     string
	Name     string
	Category Category
	Market   string

	BasePrice    float64
	CurrentPrice float64
	AsOf         string // raw header label of the current-price column

	// Derived metrics, filled by Refresh.
	Yield          float64 // trailing twelve month, sheet value as fallback
	EstimatedYield float64 // forward, 0 when no near-term payment is expected
	ReturnRate     float64 // price return
	TotalReturn    float64 // return including dividends

	History   []PricePoint
	Dividends []Dividend

	// baseDate anchors the total-return dividend window. Taken from the
	// base-price column header, falling back to the first dated column.
	baseDate date.Date
}

// bondMarker appears in the names of bond instruments.
const bondMarker = "債"

// isBond reports whether the code or name indicates a bond instrument.
func isBond(code, name string) bool {
	if strings.Contains(name, bondMarker) {
		return true
	}
	last := code[len(code)-1]
	return last == 'B' || last == 'b'
}

// otcCell reports whether an explicit market cell states over-the-counter.
func otcCell(cell string) bool {
	c := strings.ToLower(cleanCell(cell))
	return strings.Contains(c, "otc") ||
		strings.Contains(c, "over-the-counter") ||
		strings.Contains(c, "上櫃") ||
		strings.Contains(c, "櫃買")
}

// rowCode extracts the instrument code of a row: the classified code column
// when present, otherwise the first of the two leading fields that looks
// like a code.
func rowCode(fields []string, r Roles) string {
	if r.Code >= 0 && r.Code < len(fields) {
		return strings.ToUpper(cleanCell(fields[r.Code]))
	}
	for i := 0; i < 2 && i < len(fields); i++ {
		c := strings.ToUpper(cleanCell(fields[i]))
		if codePattern.MatchString(c) {
			return c
		}
	}
	return ""
}

// cellAt returns the cleaned cell at index i, empty when the role is absent
// or the row is short.
func cellAt(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return cleanCell(fields[i])
}

// BuildFunds normalizes a fund/price sheet into fund records, ordered by
// code ascending.
//
// The first matched header row determines column roles for every following
// row. Rows whose code is empty or absent from the classification table are
// dropped silently. Malformed numbers on a row default to 0 and never abort
// the batch. When no code column classifies and no row yields a positional
// code, the result is empty and ErrNoCodeColumn is returned as a soft
// warning.
func BuildFunds(text string, table *Table, kw Keywords) ([]Fund, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoSheet
	}
	if table == nil {
		return nil, errors.New("fundsheet: nil classification table")
	}

	rows := tokenize(text)
	headerAt := FindHeader(rows, kw)
	roles := Classify(rows[headerAt], kw)
	base := baseDate(roles, rows[headerAt])

	var funds []Fund
	for i, fields := range rows {
		if i <= headerAt {
			continue
		}
		code := rowCode(fields, roles)
		if code == "" || !codePattern.MatchString(code) {
			continue
		}
		category, known := table.Category(code)
		if !known {
			continue
		}

		f := Fund{
			Code:     code,
			Name:     cellAt(fields, roles.Name),
			Category: category,
			Market:   MarketListed,
			AsOf:     roles.AsOfLabel,
		}
		if category == Bond || isBond(code, f.Name) || otcCell(cellAt(fields, roles.Market)) {
			f.Market = MarketOTC
		}

		for _, dc := range roles.Dated {
			if a := ParseAmount(cellAt(fields, dc.Index)); a.Positive() {
				f.History = append(f.History, PricePoint{Label: dc.Label, Price: a.Float()})
			}
		}

		f.BasePrice = ParseAmount(cellAt(fields, roles.BasePrice)).Float()
		f.CurrentPrice = ParseAmount(cellAt(fields, roles.CurrentPrice)).Float()
		f.Yield = ParseAmount(cellAt(fields, roles.Yield)).Float()
		f.ReturnRate = ParseAmount(cellAt(fields, roles.Return)).Float()
		f.TotalReturn = f.ReturnRate

		// Absent explicit columns fall back to the price history ends.
		if f.BasePrice <= 0 && len(f.History) > 0 {
			f.BasePrice = f.History[0].Price
		}
		if f.CurrentPrice <= 0 && len(f.History) > 0 {
			f.CurrentPrice = f.History[len(f.History)-1].Price
		}
		// Prices are never negative.
		f.BasePrice = max(f.BasePrice, 0)
		f.CurrentPrice = max(f.CurrentPrice, 0)

		f.baseDate = base

		funds = append(funds, f)
	}

	if len(funds) == 0 && roles.Code < 0 {
		return nil, ErrNoCodeColumn
	}

	sort.Slice(funds, func(i, j int) bool { return funds[i].Code < funds[j].Code })
	return funds, nil
}

// baseDate resolves the historical baseline the total-return window starts
// at: the date in the base-price header when it carries one, else the first
// dated column.
func baseDate(r Roles, header []string) date.Date {
	if r.BasePrice >= 0 && r.BasePrice < len(header) {
		if d := date.Normalize(cleanCell(header[r.BasePrice])); !d.IsZero() {
			return d
		}
	}
	if len(r.Dated) > 0 {
		return r.Dated[0].Date
	}
	return date.Date{}
}
