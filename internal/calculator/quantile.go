package calculator

import (
	"math"
	"slices"

	"RiskFrontier/internal/model"
)

// Quantile returns the p-quantile of an ascending slice, interpolating
// linearly between the order statistics at floor(h) and ceil(h) with
// h = (n-1)p. It returns NaN for an empty slice.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	p = math.Min(math.Max(p, 0), 1)
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// ComputeQuantiles returns Q1, Q3 and the interquartile range of every
// asset's returns, in table order.
func ComputeQuantiles(rt *model.ReturnTable) ([]model.QuantileSummary, error) {
	if err := checkReturnTable(rt, 1); err != nil {
		return nil, err
	}
	out := make([]model.QuantileSummary, 0, len(rt.Symbols))
	for _, sym := range rt.Symbols {
		sorted := slices.Clone(rt.Returns[sym])
		slices.Sort(sorted)
		q1 := Quantile(sorted, 0.25)
		q3 := Quantile(sorted, 0.75)
		out = append(out, model.QuantileSummary{
			Symbol: sym,
			Q1:     q1,
			Q3:     q3,
			IQR:    math.Max(q3-q1, 0),
		})
	}
	return out, nil
}
