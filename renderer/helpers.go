package renderer

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// TWD formats a value as New Taiwan dollars, the reporting currency.
func TWD(v float64) string {
	cur := money.New(0, money.TWD).Currency()
	dec := decimal.NewFromFloat(v).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Percent formats a percentage figure the way the reports print them.
// Zero renders as "-" to keep unknown figures visually distinct.
func Percent(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", v)
}

// MonthName returns the short name of calendar month m (0-11).
func MonthName(m int) string {
	return time.Month(m + 1).String()[:3]
}
