package fundsheet

import (
	"github.com/shopspring/decimal"
	"github.com/yhlin/fundsheet/date"
)

// Projection is the 12-month outlook for a set of holdings. It is a pure
// function of current inputs, recomputed in full whenever holdings or fund
// records change, and never persisted.
type Projection struct {
	// MonthlyDividends is the estimated dividend income per calendar month,
	// indexed 0-11 (January-December).
	MonthlyDividends [12]float64

	// MarketValue is the projected market value at month 1..12: linear
	// interpolation toward the annualized weighted return, not compounding.
	MarketValue [12]float64

	// TotalAssets adds the cumulative estimated dividends of months 1..m to
	// the projected market value at month m.
	TotalAssets [12]float64

	// WeightedReturn is the cost-weighted average annual return rate across
	// the portfolio, in percent.
	WeightedReturn float64

	// CurrentValue is today's market value of all holdings.
	CurrentValue float64

	// AnnualDividend is the total estimated dividend income over the year.
	AnnualDividend float64
}

// cycleMonths returns the calendar months (0-11) a payout cycle
// distributes over. The three quarterly phases are disjoint and four months
// apart.
func cycleMonths(cycle Category) []int {
	switch cycle {
	case Monthly:
		return []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	case QuarterlyFeb:
		return []int{1, 4, 7, 10}
	case QuarterlyMar:
		return []int{2, 5, 8, 11}
	default:
		return []int{0, 3, 6, 9}
	}
}

// Project computes the 12-month estimated-dividend calendar and projected
// asset curves for a set of holdings against their fund records.
//
// Estimated income per holding is yield-on-cost: the fund's trailing yield
// (recomputed from its dividend window when the record-level figure is 0)
// applied to the invested cost basis, not the market value. Holdings whose
// code has no fund record are ignored.
func Project(holdings []Holding, funds []Fund, table *Table, today date.Date) Projection {
	byCode := make(map[string]*Fund, len(funds))
	for i := range funds {
		byCode[funds[i].Code] = &funds[i]
	}

	var p Projection
	hundred := decimal.NewFromInt(100)

	value := decimal.Zero
	monthly := [12]decimal.Decimal{}
	weightedNum := decimal.Zero
	totalCost := decimal.Zero
	annual := decimal.Zero

	for _, h := range holdings {
		f, ok := byCode[h.Code]
		if !ok {
			continue
		}

		cost := decimal.NewFromFloat(h.Cost())
		shares := decimal.NewFromInt(int64(h.Shares()))
		value = value.Add(shares.Mul(decimal.NewFromFloat(f.CurrentPrice)))

		// Newly added positions may predate a record-level recalculation;
		// fall back to the holding's own one-year window.
		yield := f.Yield
		if yield == 0 {
			yield = TrailingYield(f.Dividends, f.CurrentPrice, today)
		}

		income := cost.Mul(decimal.NewFromFloat(yield)).Div(hundred)
		annual = annual.Add(income)

		months := cycleMonths(table.Cycle(h.Code))
		per := income.Div(decimal.NewFromInt(int64(len(months))))
		for _, m := range months {
			monthly[m] = monthly[m].Add(per)
		}

		// Zero return rates contribute zero numerator, never an error.
		weightedNum = weightedNum.Add(cost.Mul(decimal.NewFromFloat(f.ReturnRate)))
		totalCost = totalCost.Add(cost)
	}

	p.CurrentValue = round2(value)
	p.AnnualDividend = round2(annual)
	for m := range monthly {
		p.MonthlyDividends[m] = round2(monthly[m])
	}

	rate := decimal.Zero
	if totalCost.IsPositive() {
		rate = weightedNum.Div(totalCost)
	}
	p.WeightedReturn = round2(rate)

	twelve := decimal.NewFromInt(12)
	cumulative := decimal.Zero
	for m := 1; m <= 12; m++ {
		growth := rate.Div(hundred).Mul(decimal.NewFromInt(int64(m))).Div(twelve)
		projected := value.Mul(decimal.NewFromInt(1).Add(growth))
		p.MarketValue[m-1] = round2(projected)

		cumulative = cumulative.Add(monthly[m-1])
		p.TotalAssets[m-1] = round2(projected.Add(cumulative))
	}
	return p
}
