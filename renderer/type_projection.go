package renderer

import "github.com/yhlin/fundsheet"

// ProjectionReport is the view model of the 12-month projection report.
type ProjectionReport struct {
	CurrentValue   float64
	WeightedReturn float64
	AnnualDividend float64
	Months         []ProjectionMonth
}

// ProjectionMonth is one calendar slot of the projection.
type ProjectionMonth struct {
	Month       int // 0-11
	Dividend    float64
	MarketValue float64
	TotalAssets float64
}

// NewProjectionReport builds the report view from a projection.
func NewProjectionReport(p fundsheet.Projection) *ProjectionReport {
	r := &ProjectionReport{
		CurrentValue:   p.CurrentValue,
		WeightedReturn: p.WeightedReturn,
		AnnualDividend: p.AnnualDividend,
	}
	for m := 0; m < 12; m++ {
		r.Months = append(r.Months, ProjectionMonth{
			Month:       m,
			Dividend:    p.MonthlyDividends[m],
			MarketValue: p.MarketValue[m],
			TotalAssets: p.TotalAssets[m],
		})
	}
	return r
}
