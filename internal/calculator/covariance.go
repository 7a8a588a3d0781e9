package calculator

import (
	"RiskFrontier/internal/model"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ComputeCovarianceMatrix returns the sample covariance (n-1) of every asset
// pair, self-pairs included. Rows and columns follow rt.Symbols.
func ComputeCovarianceMatrix(rt *model.ReturnTable) (*model.CovarianceMatrix, error) {
	if err := checkReturnTable(rt, 2); err != nil {
		return nil, err
	}

	n, k := rt.Observations(), len(rt.Symbols)
	x := mat.NewDense(n, k, nil)
	for j, sym := range rt.Symbols {
		x.SetCol(j, rt.Returns[sym])
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)

	symbols := make([]string, k)
	copy(symbols, rt.Symbols)
	return model.NewCovarianceMatrix(symbols, &cov), nil
}
