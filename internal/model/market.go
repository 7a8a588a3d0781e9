package model

import "time"

// PricePoint is a single daily close.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds the chronologically ordered closes of one asset.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// Dates returns the date index of the series.
func (s PriceSeries) Dates() []time.Time {
	dates := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		dates[i] = p.Date
	}
	return dates
}

// Closes returns the closing prices of the series.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// PriceTable is a rectangular set of price series sharing one date index.
// Series order defines asset order for every derived result.
type PriceTable struct {
	Series []PriceSeries
}

// Symbols returns the asset symbols in table order.
func (t PriceTable) Symbols() []string {
	symbols := make([]string, len(t.Series))
	for i, s := range t.Series {
		symbols[i] = s.Symbol
	}
	return symbols
}

// ReturnTable holds daily log returns aligned on a common date index.
// Dates excludes the first price date, which has no prior value.
type ReturnTable struct {
	Dates   []time.Time
	Symbols []string
	Returns map[string][]float64
}

// Observations returns the number of return rows.
func (t *ReturnTable) Observations() int {
	return len(t.Dates)
}
