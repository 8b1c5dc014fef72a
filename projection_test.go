package fundsheet

import (
	"math"
	"testing"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestProjectMonthlyDistribution(t *testing.T) {
	table := testTable()
	funds := []Fund{{Code: "00929", Category: Monthly, CurrentPrice: 20, Yield: 6}}
	holdings := GroupLots([]Lot{{Code: "00929", Shares: 5000, Price: 20}})

	p := Project(holdings, funds, table, today)

	// Cost basis 100,000 at 6% yield-on-cost: 500 every month, 6,000 a year.
	for m, v := range p.MonthlyDividends {
		if !almost(v, 500) {
			t.Errorf("month %d = %v, want 500", m, v)
		}
	}
	if !almost(p.AnnualDividend, 6000) {
		t.Errorf("AnnualDividend = %v, want 6000", p.AnnualDividend)
	}
}

func TestProjectQuarterlyPhases(t *testing.T) {
	table := testTable()
	funds := []Fund{{Code: "00878", Category: QuarterlyFeb, CurrentPrice: 20, Yield: 4}}
	holdings := GroupLots([]Lot{{Code: "00878", Shares: 5000, Price: 20}})

	p := Project(holdings, funds, table, today)

	// 100,000 × 4% over the Feb/May/Aug/Nov phase: 1,000 per payout month.
	want := [12]float64{0, 1000, 0, 0, 1000, 0, 0, 1000, 0, 0, 1000, 0}
	for m := range want {
		if !almost(p.MonthlyDividends[m], want[m]) {
			t.Errorf("month %d = %v, want %v", m, p.MonthlyDividends[m], want[m])
		}
	}
}

func TestProjectBondReclassification(t *testing.T) {
	table := testTable()
	// 00679B is a bond with a quarterly-mar cycle.
	funds := []Fund{{Code: "00679B", Category: Bond, CurrentPrice: 30, Yield: 4}}
	holdings := GroupLots([]Lot{{Code: "00679B", Shares: 1000, Price: 30}})

	p := Project(holdings, funds, table, today)

	for _, m := range []int{2, 5, 8, 11} {
		if p.MonthlyDividends[m] == 0 {
			t.Errorf("bond payout month %d must be funded", m)
		}
	}
	if p.MonthlyDividends[0] != 0 {
		t.Errorf("January is outside the bond's cycle")
	}
}

func TestProjectMarketValueCurve(t *testing.T) {
	table := testTable()
	// One million at market, weighted return 6%.
	funds := []Fund{{Code: "0050", Category: QuarterlyMar, CurrentPrice: 100, ReturnRate: 6}}
	holdings := GroupLots([]Lot{{Code: "0050", Shares: 10000, Price: 100}})

	p := Project(holdings, funds, table, today)

	if !almost(p.CurrentValue, 1_000_000) {
		t.Fatalf("CurrentValue = %v", p.CurrentValue)
	}
	if !almost(p.WeightedReturn, 6) {
		t.Fatalf("WeightedReturn = %v", p.WeightedReturn)
	}
	// Linear interpolation toward the annualized rate, not compounding.
	if !almost(p.MarketValue[11], 1_060_000) {
		t.Errorf("month 12 = %v, want 1060000", p.MarketValue[11])
	}
	if !almost(p.MarketValue[5], 1_030_000) {
		t.Errorf("month 6 = %v, want 1030000", p.MarketValue[5])
	}
}

func TestProjectTotalAssetsAddCumulativeDividends(t *testing.T) {
	table := testTable()
	funds := []Fund{{Code: "00929", Category: Monthly, CurrentPrice: 20, Yield: 6}}
	holdings := GroupLots([]Lot{{Code: "00929", Shares: 5000, Price: 20}})

	p := Project(holdings, funds, table, today)

	// Flat return: market value stays, assets accrue 500 a month.
	if !almost(p.TotalAssets[0], p.MarketValue[0]+500) {
		t.Errorf("month 1 assets = %v", p.TotalAssets[0])
	}
	if !almost(p.TotalAssets[11], p.MarketValue[11]+6000) {
		t.Errorf("month 12 assets = %v", p.TotalAssets[11])
	}
}

func TestProjectWeightedReturn(t *testing.T) {
	table := testTable()
	funds := []Fund{
		{Code: "0050", Category: QuarterlyMar, CurrentPrice: 100, ReturnRate: 10},
		{Code: "0056", Category: QuarterlyJan, CurrentPrice: 50, ReturnRate: 0},
	}
	holdings := GroupLots([]Lot{
		{Code: "0050", Shares: 1000, Price: 100}, // cost 100,000
		{Code: "0056", Shares: 2000, Price: 50},  // cost 100,000, zero return
	})

	p := Project(holdings, funds, table, today)

	// Zero return contributes zero numerator, not an error: 10%/2.
	if !almost(p.WeightedReturn, 5) {
		t.Errorf("WeightedReturn = %v, want 5", p.WeightedReturn)
	}
}

func TestProjectYieldFallbackFromDividendWindow(t *testing.T) {
	table := testTable()
	// Record-level yield not yet recalculated: the holding recomputes from
	// the fund's own one-year dividend window.
	funds := []Fund{{
		Code:         "0056",
		Category:     QuarterlyJan,
		CurrentPrice: 100,
		Dividends: []Dividend{
			{Date: today.AddMonths(-2), Amount: 3},
		},
	}}
	holdings := GroupLots([]Lot{{Code: "0056", Shares: 1000, Price: 100}})

	p := Project(holdings, funds, table, today)
	if !almost(p.AnnualDividend, 3000) {
		t.Errorf("AnnualDividend = %v, want 3000 (3%% on 100,000 cost)", p.AnnualDividend)
	}
}

func TestProjectIgnoresUnknownHoldings(t *testing.T) {
	table := testTable()
	p := Project(GroupLots([]Lot{{Code: "4242", Shares: 1000, Price: 10}}), nil, table, today)
	if p.CurrentValue != 0 || p.AnnualDividend != 0 {
		t.Errorf("projection = %+v, want zero", p)
	}
}

func TestProjectEmpty(t *testing.T) {
	p := Project(nil, nil, testTable(), today)
	if p.WeightedReturn != 0 || p.CurrentValue != 0 {
		t.Errorf("empty projection = %+v", p)
	}
}
