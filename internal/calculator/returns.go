package calculator

import (
	"fmt"
	"math"
	"time"

	"RiskFrontier/internal/model"
)

// ComputeReturns derives daily log returns ln(p[t]) - ln(p[t-1]) for every
// series in the table. The first date is dropped. All series must share the
// same strictly increasing date index.
func ComputeReturns(table model.PriceTable) (*model.ReturnTable, error) {
	if len(table.Series) == 0 {
		return nil, fmt.Errorf("%w: no assets in price table", ErrInsufficientData)
	}

	ref := table.Series[0]
	if err := checkDateIndex(ref); err != nil {
		return nil, err
	}

	dates := ref.Dates()
	rt := &model.ReturnTable{
		Dates:   dates[1:],
		Symbols: make([]string, 0, len(table.Series)),
		Returns: make(map[string][]float64, len(table.Series)),
	}

	for _, s := range table.Series {
		if _, dup := rt.Returns[s.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate asset %q", ErrDataAlignment, s.Symbol)
		}
		if len(s.Points) < 2 {
			return nil, fmt.Errorf("%w: %s has %d price points, need at least 2", ErrInsufficientData, s.Symbol, len(s.Points))
		}
		if len(s.Points) != len(ref.Points) {
			return nil, fmt.Errorf("%w: %s has %d dates, %s has %d",
				ErrDataAlignment, s.Symbol, len(s.Points), ref.Symbol, len(ref.Points))
		}
		for i, p := range s.Points {
			if !p.Date.Equal(dates[i]) {
				return nil, fmt.Errorf("%w: %s date %s does not match %s date %s",
					ErrDataAlignment, s.Symbol, p.Date.Format(time.DateOnly), ref.Symbol, dates[i].Format(time.DateOnly))
			}
			if math.IsNaN(p.Close) {
				return nil, fmt.Errorf("%w: %s missing price on %s", ErrDataAlignment, s.Symbol, p.Date.Format(time.DateOnly))
			}
			if p.Close <= 0 || math.IsInf(p.Close, 0) {
				return nil, fmt.Errorf("%w: %s price %v on %s", ErrInvalidPrice, s.Symbol, p.Close, p.Date.Format(time.DateOnly))
			}
		}

		closes := s.Closes()
		returns := make([]float64, len(closes)-1)
		for i := 1; i < len(closes); i++ {
			returns[i-1] = math.Log(closes[i]) - math.Log(closes[i-1])
		}
		rt.Symbols = append(rt.Symbols, s.Symbol)
		rt.Returns[s.Symbol] = returns
	}
	return rt, nil
}

func checkDateIndex(s model.PriceSeries) error {
	if len(s.Points) < 2 {
		return fmt.Errorf("%w: %s has %d price points, need at least 2", ErrInsufficientData, s.Symbol, len(s.Points))
	}
	for i := 1; i < len(s.Points); i++ {
		if !s.Points[i].Date.After(s.Points[i-1].Date) {
			return fmt.Errorf("%w: %s dates not strictly increasing at %s",
				ErrDataAlignment, s.Symbol, s.Points[i].Date.Format(time.DateOnly))
		}
	}
	return nil
}
