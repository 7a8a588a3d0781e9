package report

import "github.com/shopspring/decimal"

// Percent scales a fractional value to percent. Scaling happens only here,
// after every statistic has been computed on raw returns.
func Percent(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Shift(2)
}

// PercentSquared scales a variance of fractional returns to percent squared.
func PercentSquared(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Shift(4)
}

// fixed renders d with the given number of decimals.
func fixed(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}
