package analysis

import (
	"errors"
	"fmt"
	"math"

	"RiskFrontier/internal/calculator"
	"RiskFrontier/internal/model"
)

// ErrUnknownAsset is returned when a pair names an asset that is not in the table.
var ErrUnknownAsset = errors.New("unknown asset")

// Pair names the two assets of a frontier sweep. A is the swept weight.
type Pair struct {
	A string
	B string
}

// Run computes the full analysis of a price table: returns, descriptive
// stats, quartiles, the covariance matrix and one frontier per pair.
// A failure in any stage fails the whole run.
func Run(table model.PriceTable, pairs []Pair, gridPoints int) (*model.Analysis, error) {
	returns, err := calculator.ComputeReturns(table)
	if err != nil {
		return nil, fmt.Errorf("compute returns: %w", err)
	}
	stats, err := calculator.ComputeDescriptiveStats(returns)
	if err != nil {
		return nil, fmt.Errorf("compute descriptive stats: %w", err)
	}
	quantiles, err := calculator.ComputeQuantiles(returns)
	if err != nil {
		return nil, fmt.Errorf("compute quantiles: %w", err)
	}
	cov, err := calculator.ComputeCovarianceMatrix(returns)
	if err != nil {
		return nil, fmt.Errorf("compute covariance matrix: %w", err)
	}

	a := &model.Analysis{
		Start:        returns.Dates[0],
		End:          returns.Dates[len(returns.Dates)-1],
		Observations: returns.Observations(),
		Returns:      returns,
		Stats:        stats,
		Quantiles:    quantiles,
		Covariance:   cov,
		Pairs:        make([]model.PairAnalysis, 0, len(pairs)),
	}

	for _, p := range pairs {
		in, err := FrontierInputFor(a, p)
		if err != nil {
			return nil, err
		}
		frontier, err := calculator.SweepTwoAssetFrontier(in, gridPoints)
		if err != nil {
			return nil, fmt.Errorf("sweep %s/%s frontier: %w", p.A, p.B, err)
		}
		sa, _ := a.StatsFor(p.A)
		sb, _ := a.StatsFor(p.B)
		a.Pairs = append(a.Pairs, model.PairAnalysis{
			AssetA:      p.A,
			AssetB:      p.B,
			Covariance:  in.CovAB,
			Correlation: Correlation(in.CovAB, sa.StdDev, sb.StdDev),
			Frontier:    frontier,
		})
	}
	return a, nil
}

// FrontierInputFor assembles a sweep input from the computed stats and a
// single covariance-matrix lookup.
func FrontierInputFor(a *model.Analysis, p Pair) (model.FrontierInput, error) {
	sa, ok := a.StatsFor(p.A)
	if !ok {
		return model.FrontierInput{}, fmt.Errorf("%w: %s", ErrUnknownAsset, p.A)
	}
	sb, ok := a.StatsFor(p.B)
	if !ok {
		return model.FrontierInput{}, fmt.Errorf("%w: %s", ErrUnknownAsset, p.B)
	}
	cov, ok := a.Covariance.Get(p.A, p.B)
	if !ok {
		return model.FrontierInput{}, fmt.Errorf("%w: %s/%s not in covariance matrix", ErrUnknownAsset, p.A, p.B)
	}
	return model.FrontierInput{
		AssetA: p.A,
		AssetB: p.B,
		MeanA:  sa.Mean,
		MeanB:  sb.Mean,
		VarA:   sa.Variance,
		VarB:   sb.Variance,
		CovAB:  cov,
	}, nil
}

// Correlation returns cov / (sdA * sdB), or 0 when either asset has no dispersion.
func Correlation(cov, sdA, sdB float64) float64 {
	if sdA == 0 || sdB == 0 {
		return 0
	}
	rho := cov / (sdA * sdB)
	return math.Max(-1, math.Min(1, rho))
}
