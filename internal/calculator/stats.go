package calculator

import (
	"fmt"
	"math"

	"RiskFrontier/internal/model"

	"gonum.org/v1/gonum/stat"
)

// ComputeDescriptiveStats returns mean, sample variance (n-1) and standard
// deviation for every asset, in table order.
func ComputeDescriptiveStats(rt *model.ReturnTable) ([]model.DescriptiveStats, error) {
	if err := checkReturnTable(rt, 2); err != nil {
		return nil, err
	}
	out := make([]model.DescriptiveStats, 0, len(rt.Symbols))
	for _, sym := range rt.Symbols {
		returns := rt.Returns[sym]
		mean, variance := stat.MeanVariance(returns, nil)
		// Rounding can push a constant series a hair below zero.
		variance = math.Max(variance, 0)
		out = append(out, model.DescriptiveStats{
			Symbol:       sym,
			Mean:         mean,
			Variance:     variance,
			StdDev:       math.Sqrt(variance),
			Observations: len(returns),
		})
	}
	return out, nil
}

// checkReturnTable verifies every series is present, aligned on rt.Dates and
// holds at least minObs observations.
func checkReturnTable(rt *model.ReturnTable, minObs int) error {
	if rt == nil || len(rt.Symbols) == 0 {
		return fmt.Errorf("%w: no assets in return table", ErrInsufficientData)
	}
	for _, sym := range rt.Symbols {
		returns, ok := rt.Returns[sym]
		if !ok {
			return fmt.Errorf("%w: no returns for %s", ErrDataAlignment, sym)
		}
		if len(returns) != len(rt.Dates) {
			return fmt.Errorf("%w: %s has %d returns for %d dates", ErrDataAlignment, sym, len(returns), len(rt.Dates))
		}
		if len(returns) < minObs {
			return fmt.Errorf("%w: %s has %d observations, need at least %d", ErrInsufficientData, sym, len(returns), minObs)
		}
		for i, r := range returns {
			if math.IsNaN(r) || math.IsInf(r, 0) {
				return fmt.Errorf("%w: %s has a missing return at row %d", ErrDataAlignment, sym, i)
			}
		}
	}
	return nil
}
