package renderer

import "github.com/yhlin/fundsheet"

// FundsReport is the view model of the fund table report.
type FundsReport struct {
	AsOf string
	Rows []FundRow
}

// FundRow is one rendered fund line.
type FundRow struct {
	Code           string
	Name           string
	Category       string
	Market         string
	CurrentPrice   float64
	Yield          float64
	EstimatedYield float64
	ReturnRate     float64
	TotalReturn    float64
}

// NewFundsReport builds the report view from fund records, keeping their
// order (the builder already sorts by code).
func NewFundsReport(funds []fundsheet.Fund) *FundsReport {
	r := &FundsReport{}
	for _, f := range funds {
		if r.AsOf == "" {
			r.AsOf = f.AsOf
		}
		r.Rows = append(r.Rows, FundRow{
			Code:           f.Code,
			Name:           f.Name,
			Category:       f.Category.String(),
			Market:         f.Market,
			CurrentPrice:   f.CurrentPrice,
			Yield:          f.Yield,
			EstimatedYield: f.EstimatedYield,
			ReturnRate:     f.ReturnRate,
			TotalReturn:    f.TotalReturn,
		})
	}
	return r
}
