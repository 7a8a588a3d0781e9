package collector

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"RiskFrontier/internal/model"

	"golang.org/x/sync/errgroup"
)

// ErrNoData is returned when a requested asset has no usable price history.
var ErrNoData = errors.New("no price data")

// maxConcurrentFetches bounds parallel requests to the data source.
const maxConcurrentFetches = 4

// Asset is a symbol to fetch plus the name it is reported under.
type Asset struct {
	Symbol string
	Alias  string
}

// Name returns the alias, falling back to the symbol.
func (a Asset) Name() string {
	if a.Alias != "" {
		return a.Alias
	}
	return a.Symbol
}

// MockFetcher returns fixed per-symbol data for development and testing.
type MockFetcher struct {
	Series map[string][]model.PricePoint
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ context.Context, symbol string, start, end time.Time) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []model.PricePoint
	for _, p := range m.Series[symbol] {
		if p.Date.Before(tradingDay(start)) || p.Date.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Collector fetches price history for a set of assets and aligns it into a
// rectangular table.
type Collector struct {
	Fetcher Fetcher
	Assets  []Asset
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, assets []Asset) *Collector {
	return &Collector{Fetcher: fetcher, Assets: assets}
}

// Collect fetches every asset between start and end and keeps only the dates
// all of them traded on. Any asset without data fails the whole collection.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) (model.PriceTable, error) {
	if len(c.Assets) == 0 {
		return model.PriceTable{}, fmt.Errorf("%w: no assets configured", ErrNoData)
	}

	fetched := make([][]model.PricePoint, len(c.Assets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, a := range c.Assets {
		i, a := i, a
		g.Go(func() error {
			pts, err := c.Fetcher.FetchDailyCloses(gctx, a.Symbol, start, end)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", a.Symbol, err)
			}
			if len(pts) == 0 {
				return fmt.Errorf("%w: %s between %s and %s", ErrNoData, a.Symbol,
					start.Format(time.DateOnly), end.Format(time.DateOnly))
			}
			fetched[i] = pts
			log.Printf("[INFO] fetched %d closes for %s from %s", len(pts), a.Symbol, c.Fetcher.Name())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.PriceTable{}, err
	}

	table := align(c.Assets, fetched)
	if len(table.Series[0].Points) < 2 {
		return model.PriceTable{}, fmt.Errorf("%w: only %d common trading dates across %d assets",
			ErrNoData, len(table.Series[0].Points), len(c.Assets))
	}
	return table, nil
}

// align intersects the date indices of all series. Rows missing in any
// series are dropped, the way a row-wise dropna would.
func align(assets []Asset, fetched [][]model.PricePoint) model.PriceTable {
	counts := make(map[time.Time]int)
	byAsset := make([]map[time.Time]float64, len(fetched))
	for i, pts := range fetched {
		byAsset[i] = make(map[time.Time]float64, len(pts))
		for _, p := range pts {
			d := tradingDay(p.Date)
			if _, dup := byAsset[i][d]; !dup {
				counts[d]++
			}
			// Last value wins for duplicate days.
			byAsset[i][d] = p.Close
		}
	}

	common := make([]time.Time, 0, len(counts))
	for d, n := range counts {
		if n == len(fetched) {
			common = append(common, d)
		}
	}
	sort.Slice(common, func(i, j int) bool { return common[i].Before(common[j]) })

	table := model.PriceTable{Series: make([]model.PriceSeries, len(assets))}
	for i, a := range assets {
		pts := make([]model.PricePoint, len(common))
		for j, d := range common {
			pts[j] = model.PricePoint{Date: d, Close: byAsset[i][d]}
		}
		if dropped := len(byAsset[i]) - len(common); dropped > 0 {
			log.Printf("[WARN] %s: dropped %d dates not shared by all assets", a.Name(), dropped)
		}
		table.Series[i] = model.PriceSeries{Symbol: a.Name(), Points: pts}
	}
	return table
}
