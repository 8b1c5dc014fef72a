package fundsheet

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yhlin/fundsheet/date"
)

// Payment cycle lengths used for the forward yield estimate: one cycle's
// worth of distributions approximates the next twelve months of income.
const (
	monthlyPeriods   = 12
	quarterlyPeriods = 4
)

// Refresh attaches each fund's dividend history and recomputes every derived
// metric. It is a full pass over current inputs; nothing is cached.
func Refresh(funds []Fund, dividends map[string][]Dividend, table *Table, today date.Date) {
	for i := range funds {
		funds[i].Refresh(dividends[funds[i].Code], table, today)
	}
}

// Refresh merges the dividend history into the record and recomputes yield
// and return figures. Values parsed from the sheet survive only where the
// dividend-derived figure is unavailable.
func (f *Fund) Refresh(dividends []Dividend, table *Table, today date.Date) {
	f.Dividends = dividends

	// Trailing yield from actual distributions overrides the sheet value.
	if y := TrailingYield(dividends, f.CurrentPrice, today); y > 0 {
		f.Yield = y
	}

	periods := quarterlyPeriods
	if f.Category == Monthly || table.MonthlyPayer(f.Code) {
		periods = monthlyPeriods
	}
	f.EstimatedYield = ForwardYield(dividends, f.CurrentPrice, periods, today)

	f.refreshReturns(today)
}

// TrailingYield is the trailing-twelve-month dividend yield in percent,
// rounded half up to 2 decimals: the sum of distributions dated within
// [today − 1 year, today], over the current price. 0 when the price is not
// positive or no distribution falls in the window.
func TrailingYield(dividends []Dividend, price float64, today date.Date) float64 {
	if price <= 0 {
		return 0
	}
	window := date.NewRange(today.AddYears(-1), today)
	sum := decimal.Zero
	for _, d := range dividends {
		if window.Contains(d.Date) {
			sum = sum.Add(decimal.NewFromFloat(d.Amount))
		}
	}
	if sum.IsZero() {
		return 0
	}
	return round2(sum.Div(decimal.NewFromFloat(price)).Mul(decimal.NewFromInt(100)))
}

// ForwardYield estimates the yield of the coming year in percent: the sum of
// the `periods` most recent distributions over the current price.
//
// The estimate exists only when the most recent distribution is strictly in
// the future; no expected near-term payment is treated as unknown, not
// negative, and yields 0.
func ForwardYield(dividends []Dividend, price float64, periods int, today date.Date) float64 {
	if price <= 0 || len(dividends) == 0 || periods <= 0 {
		return 0
	}

	recent := make([]Dividend, len(dividends))
	copy(recent, dividends)
	sort.Slice(recent, func(i, j int) bool { return recent[j].Date.Before(recent[i].Date) })

	if !recent[0].Date.After(today) {
		return 0
	}
	if len(recent) > periods {
		recent = recent[:periods]
	}
	sum := decimal.Zero
	for _, d := range recent {
		sum = sum.Add(decimal.NewFromFloat(d.Amount))
	}
	return round2(sum.Div(decimal.NewFromFloat(price)).Mul(decimal.NewFromInt(100)))
}

// refreshReturns recomputes the price return and the dividend-inclusive
// total return. Without a usable base price both keep the sheet figures.
func (f *Fund) refreshReturns(today date.Date) {
	if f.BasePrice <= 0 {
		return
	}
	base := decimal.NewFromFloat(f.BasePrice)
	current := decimal.NewFromFloat(f.CurrentPrice)
	hundred := decimal.NewFromInt(100)

	if f.CurrentPrice > 0 {
		f.ReturnRate = round2(current.Sub(base).Div(base).Mul(hundred))
	}

	window := date.NewRange(f.baseDate, today)
	sum := decimal.Zero
	for _, d := range f.Dividends {
		if window.Contains(d.Date) {
			sum = sum.Add(decimal.NewFromFloat(d.Amount))
		}
	}
	f.TotalReturn = round2(current.Add(sum).Sub(base).Div(base).Mul(hundred))
}
