package model

import (
	"time"

	"gonum.org/v1/gonum/mat"
)

// DescriptiveStats summarises one asset's return series.
type DescriptiveStats struct {
	Symbol       string
	Mean         float64
	Variance     float64
	StdDev       float64
	Observations int
}

// QuantileSummary holds the quartiles of one asset's return series.
type QuantileSummary struct {
	Symbol string
	Q1     float64
	Q3     float64
	IQR    float64
}

// CovarianceMatrix is the symmetric sample covariance of a set of assets.
type CovarianceMatrix struct {
	Symbols []string
	index   map[string]int
	data    *mat.SymDense
}

// NewCovarianceMatrix wraps a symmetric matrix whose rows follow symbols.
func NewCovarianceMatrix(symbols []string, data *mat.SymDense) *CovarianceMatrix {
	index := make(map[string]int, len(symbols))
	for i, s := range symbols {
		index[s] = i
	}
	return &CovarianceMatrix{Symbols: symbols, index: index, data: data}
}

// Get returns the covariance between a and b.
func (c *CovarianceMatrix) Get(a, b string) (float64, bool) {
	i, ok := c.index[a]
	if !ok {
		return 0, false
	}
	j, ok := c.index[b]
	if !ok {
		return 0, false
	}
	return c.data.At(i, j), true
}

// At returns the covariance by position.
func (c *CovarianceMatrix) At(i, j int) float64 {
	return c.data.At(i, j)
}

// Size returns the number of assets.
func (c *CovarianceMatrix) Size() int {
	return len(c.Symbols)
}

// PortfolioPoint is one row of a two-asset weight sweep. Values are fractional.
type PortfolioPoint struct {
	WeightA        float64
	WeightB        float64
	ExpectedReturn float64
	Volatility     float64
}

// FrontierInput carries the statistics a two-asset sweep needs.
type FrontierInput struct {
	AssetA string
	AssetB string
	MeanA  float64
	MeanB  float64
	VarA   float64
	VarB   float64
	CovAB  float64
}

// Frontier is the full weight grid plus its designated points.
// MaxReturn and MinVariance are copies of Points[MaxReturnIndex] and Points[MinVarianceIndex].
type Frontier struct {
	AssetA           string
	AssetB           string
	Points           []PortfolioPoint
	MaxReturn        PortfolioPoint
	MaxReturnIndex   int
	MinVariance      PortfolioPoint
	MinVarianceIndex int
}

// PairAnalysis is the result for one configured asset pair.
type PairAnalysis struct {
	AssetA      string
	AssetB      string
	Covariance  float64
	Correlation float64
	Frontier    *Frontier
}

// Analysis is the complete output of one batch run.
type Analysis struct {
	Start        time.Time
	End          time.Time
	Observations int
	Returns      *ReturnTable
	Stats        []DescriptiveStats
	Quantiles    []QuantileSummary
	Covariance   *CovarianceMatrix
	Pairs        []PairAnalysis
}

// StatsFor returns the descriptive stats of symbol.
func (a *Analysis) StatsFor(symbol string) (DescriptiveStats, bool) {
	for _, s := range a.Stats {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return DescriptiveStats{}, false
}

// QuantilesFor returns the quartile summary of symbol.
func (a *Analysis) QuantilesFor(symbol string) (QuantileSummary, bool) {
	for _, q := range a.Quantiles {
		if q.Symbol == symbol {
			return q, true
		}
	}
	return QuantileSummary{}, false
}
