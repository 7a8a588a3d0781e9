package collector

import (
	"context"
	"time"

	"RiskFrontier/internal/model"
)

// Fetcher defines the interface for fetching daily closing prices.
// Implementations return points in chronological order with dates truncated
// to the trading day.
type Fetcher interface {
	FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]model.PricePoint, error)
	Name() string
}

// tradingDay truncates t to midnight UTC of its calendar day.
func tradingDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
