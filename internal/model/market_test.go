package model

import (
	"testing"
	"time"
)

func TestPriceSeries_DatesAndCloses(t *testing.T) {
	d0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s := PriceSeries{Symbol: "EBAY", Points: []PricePoint{
		{Date: d0, Close: 50},
		{Date: d0.AddDate(0, 0, 3), Close: 51.5},
	}}

	dates, closes := s.Dates(), s.Closes()
	if len(dates) != 2 || !dates[0].Equal(d0) || !dates[1].Equal(d0.AddDate(0, 0, 3)) {
		t.Errorf("unexpected dates %v", dates)
	}
	if len(closes) != 2 || closes[0] != 50 || closes[1] != 51.5 {
		t.Errorf("unexpected closes %v", closes)
	}

	closes[0] = 0
	if s.Points[0].Close != 50 {
		t.Error("Closes must return a copy")
	}
}
