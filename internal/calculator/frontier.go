package calculator

import (
	"fmt"
	"math"

	"RiskFrontier/internal/model"
)

// DefaultGridPoints is the number of weight combinations in a sweep (step 1/50).
const DefaultGridPoints = 51

// SweepTwoAssetFrontier evaluates nPoints portfolios with weight_A running
// linearly from 0 to 1 and weight_B = 1 - weight_A. The grid is returned in
// strictly increasing weight_A order. Ties for the maximum return and the
// minimum volatility resolve to the first grid point.
func SweepTwoAssetFrontier(in model.FrontierInput, nPoints int) (*model.Frontier, error) {
	if nPoints < 2 {
		return nil, fmt.Errorf("%w: %d points, need at least 2", ErrInvalidWeightGrid, nPoints)
	}
	if err := checkFrontierInput(in); err != nil {
		return nil, err
	}

	f := &model.Frontier{
		AssetA: in.AssetA,
		AssetB: in.AssetB,
		Points: make([]model.PortfolioPoint, nPoints),
	}
	last := float64(nPoints - 1)
	for i := range f.Points {
		wa := float64(i) / last
		wb := 1 - wa
		variance := wa*wa*in.VarA + wb*wb*in.VarB + 2*wa*wb*in.CovAB
		f.Points[i] = model.PortfolioPoint{
			WeightA:        wa,
			WeightB:        wb,
			// Offset form keeps equal means exactly tied on every row.
			ExpectedReturn: in.MeanB + wa*(in.MeanA-in.MeanB),
			// Perfectly offsetting assets can round to a tiny negative variance.
			Volatility: math.Sqrt(math.Max(variance, 0)),
		}

		if i == 0 || f.Points[i].ExpectedReturn > f.Points[f.MaxReturnIndex].ExpectedReturn {
			f.MaxReturnIndex = i
		}
		if i == 0 || f.Points[i].Volatility < f.Points[f.MinVarianceIndex].Volatility {
			f.MinVarianceIndex = i
		}
	}
	f.MaxReturn = f.Points[f.MaxReturnIndex]
	f.MinVariance = f.Points[f.MinVarianceIndex]
	return f, nil
}

func checkFrontierInput(in model.FrontierInput) error {
	fields := []struct {
		name     string
		value    float64
		variance bool
	}{
		{"mean of " + in.AssetA, in.MeanA, false},
		{"mean of " + in.AssetB, in.MeanB, false},
		{"variance of " + in.AssetA, in.VarA, true},
		{"variance of " + in.AssetB, in.VarB, true},
		{"covariance", in.CovAB, false},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || (f.variance && f.value < 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidFrontierInput, f.name, f.value)
		}
	}
	return nil
}
