package fundsheet

import (
	"regexp"
	"strings"

	"github.com/yhlin/fundsheet/date"
)

// headerWindow is how many leading rows are scanned for a header row.
const headerWindow = 10

// Keywords holds the lower-cased header fragments used to recognize column
// roles. It is explicit configuration, not a hidden constant, so tests and
// localized sheets can substitute their own sets.
type Keywords struct {
	Code         []string
	Name         []string
	Market       []string
	BasePrice    []string
	CurrentPrice []string
	Yield        []string
	Return       []string

	// Dividend sheet roles.
	DividendCode   []string
	DividendAmount []string
	DividendDate   []string
}

// DefaultKeywords covers the zh-TW and English headers seen in the known
// exports.
func DefaultKeywords() Keywords {
	return Keywords{
		Code:         []string{"代號", "代碼", "股票代號", "基金代號", "code", "symbol", "ticker"},
		Name:         []string{"名稱", "簡稱", "股票名稱", "name"},
		Market:       []string{"市場", "上市櫃", "market"},
		BasePrice:    []string{"基準價", "基準日", "發行價", "期初", "base", "initial"},
		CurrentPrice: []string{"收盤", "現價", "市價", "淨值", "close", "price"},
		Yield:        []string{"殖利率", "配息率", "yield"},
		Return:       []string{"報酬", "漲跌幅", "return"},

		DividendCode:   []string{"代號", "代碼", "code", "symbol"},
		DividendAmount: []string{"配息", "金額", "股利", "amount", "dividend"},
		DividendDate:   []string{"除息", "日期", "發放", "date"},
	}
}

// dateShape matches header text that is a 4-digit year plus month and
// optional day, with '/', '.', '-' or no separators.
var dateShape = regexp.MustCompile(`^\d{4}([/.\-]\d{1,2}([/.\-]\d{1,2})?|\d{2}(\d{2})?)$`)

// DatedColumn is a price column whose header is a date, kept in the order it
// appears in the sheet (left to right).
type DatedColumn struct {
	Index int
	Label string    // raw header text, used as display label
	Date  date.Date // normalized header date, zero when out of shape
}

// Roles maps semantic column roles to column indices, -1 when absent.
// It is computed once per sheet and reused for every row.
type Roles struct {
	Code         int
	Name         int
	Market       int
	BasePrice    int
	CurrentPrice int
	Yield        int
	Return       int

	// Dated price columns left to right. The sheets place historical closes
	// in ascending date order, so position, not parsed date value, decides
	// recency: the right-most dated column is the current-price column.
	Dated []DatedColumn

	// AsOfLabel is the raw header text of the current-price column when it
	// is a dated column.
	AsOfLabel string
}

func newRoles() Roles {
	return Roles{Code: -1, Name: -1, Market: -1, BasePrice: -1, CurrentPrice: -1, Yield: -1, Return: -1}
}

// matchAny reports whether the lower-cased cell contains any of the keywords.
func matchAny(cell string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(cell, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// FindHeader scans the first rows for the header row: the first row any of
// whose cells matches a code keyword. When none is found within the window,
// row 0 is assumed (best effort, never fails).
func FindHeader(rows [][]string, kw Keywords) int {
	limit := len(rows)
	if limit > headerWindow {
		limit = headerWindow
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if matchAny(strings.ToLower(cleanCell(cell)), kw.Code) {
				return i
			}
		}
	}
	return 0
}

// Classify assigns semantic roles to the columns of a header row.
//
// Each column is tested against the role keyword lists in priority order
// (code, name, market, base price, yield, return); the first unassigned role
// that matches claims the column. Independently, columns whose header text is
// date-shaped are collected as dated price columns; the last one becomes the
// current-price column and its raw text the as-of label. When no dated column
// exists, the current-price column falls back to keyword matching.
func Classify(header []string, kw Keywords) Roles {
	r := newRoles()

	for i, raw := range header {
		cell := strings.ToLower(cleanCell(raw))
		if cell == "" {
			continue
		}

		if dateShape.MatchString(cell) {
			r.Dated = append(r.Dated, DatedColumn{
				Index: i,
				Label: cleanCell(raw),
				Date:  date.Normalize(cell),
			})
			continue
		}

		switch {
		case r.Code < 0 && matchAny(cell, kw.Code):
			r.Code = i
		case r.Name < 0 && matchAny(cell, kw.Name):
			r.Name = i
		case r.Market < 0 && matchAny(cell, kw.Market):
			r.Market = i
		case r.BasePrice < 0 && matchAny(cell, kw.BasePrice):
			r.BasePrice = i
		case r.Yield < 0 && matchAny(cell, kw.Yield):
			r.Yield = i
		case r.Return < 0 && matchAny(cell, kw.Return):
			r.Return = i
		case r.CurrentPrice < 0 && matchAny(cell, kw.CurrentPrice):
			r.CurrentPrice = i
		}
	}

	if n := len(r.Dated); n > 0 {
		last := r.Dated[n-1]
		r.CurrentPrice = last.Index
		r.AsOfLabel = last.Label
	}
	return r
}

// classifyDividends assigns the code, amount and date columns of a dividend
// sheet header.
func classifyDividends(header []string, kw Keywords) (code, amount, when int) {
	code, amount, when = -1, -1, -1
	for i, raw := range header {
		cell := strings.ToLower(cleanCell(raw))
		switch {
		case code < 0 && matchAny(cell, kw.DividendCode):
			code = i
		case amount < 0 && matchAny(cell, kw.DividendAmount):
			amount = i
		case when < 0 && matchAny(cell, kw.DividendDate):
			when = i
		}
	}
	return code, amount, when
}
