package analysis

import (
	"slices"

	"RiskFrontier/internal/model"
)

// RankByMean orders assets by mean return, highest first.
func RankByMean(stats []model.DescriptiveStats) []model.DescriptiveStats {
	out := slices.Clone(stats)
	slices.SortStableFunc(out, func(a, b model.DescriptiveStats) int {
		return descending(a.Mean, b.Mean)
	})
	return out
}

// RankByVolatility orders assets by standard deviation, highest first.
func RankByVolatility(stats []model.DescriptiveStats) []model.DescriptiveStats {
	out := slices.Clone(stats)
	slices.SortStableFunc(out, func(a, b model.DescriptiveStats) int {
		return descending(a.StdDev, b.StdDev)
	})
	return out
}

// RankByIQR orders assets by interquartile range, widest first.
func RankByIQR(quantiles []model.QuantileSummary) []model.QuantileSummary {
	out := slices.Clone(quantiles)
	slices.SortStableFunc(out, func(a, b model.QuantileSummary) int {
		return descending(a.IQR, b.IQR)
	})
	return out
}

func descending(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
