package analysis

import (
	"testing"

	"RiskFrontier/internal/model"
)

func symbolsOf[T any](items []T, sym func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = sym(it)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRankings(t *testing.T) {
	stats := []model.DescriptiveStats{
		{Symbol: "SP500", Mean: 0.0004, StdDev: 0.011},
		{Symbol: "VIX", Mean: -0.0002, StdDev: 0.07},
		{Symbol: "BABA", Mean: 0.0001, StdDev: 0.03},
		{Symbol: "EBAY", Mean: 0.0004, StdDev: 0.02},
	}
	statSym := func(s model.DescriptiveStats) string { return s.Symbol }

	byMean := symbolsOf(RankByMean(stats), statSym)
	if want := []string{"SP500", "EBAY", "BABA", "VIX"}; !equalStrings(byMean, want) {
		t.Errorf("RankByMean: expected %v, got %v", want, byMean)
	}
	byVol := symbolsOf(RankByVolatility(stats), statSym)
	if want := []string{"VIX", "BABA", "EBAY", "SP500"}; !equalStrings(byVol, want) {
		t.Errorf("RankByVolatility: expected %v, got %v", want, byVol)
	}
	if stats[0].Symbol != "SP500" || stats[1].Symbol != "VIX" {
		t.Error("ranking reordered its input")
	}

	qs := []model.QuantileSummary{{Symbol: "A", IQR: 0.01}, {Symbol: "B", IQR: 0.05}, {Symbol: "C", IQR: 0.01}}
	byIQR := symbolsOf(RankByIQR(qs), func(q model.QuantileSummary) string { return q.Symbol })
	if want := []string{"B", "A", "C"}; !equalStrings(byIQR, want) {
		t.Errorf("RankByIQR: expected %v, got %v", want, byIQR)
	}
}
