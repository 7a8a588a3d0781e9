package report

import (
	"strings"
	"testing"
	"time"

	"RiskFrontier/internal/analysis"
	"RiskFrontier/internal/model"
)

func sampleAnalysis(t *testing.T) *model.Analysis {
	t.Helper()
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	mk := func(sym string, closes ...float64) model.PriceSeries {
		pts := make([]model.PricePoint, len(closes))
		for i, c := range closes {
			pts[i] = model.PricePoint{Date: start.AddDate(0, 0, i), Close: c}
		}
		return model.PriceSeries{Symbol: sym, Points: pts}
	}
	a, err := analysis.Run(model.PriceTable{Series: []model.PriceSeries{
		mk("BABA", 80, 78, 83, 81, 86, 84, 85),
		mk("EBAY", 50, 50.5, 50.2, 51, 51.4, 51.1, 51.3),
	}}, []analysis.Pair{{A: "BABA", B: "EBAY"}}, 51)
	if err != nil {
		t.Fatalf("analysis: %v", err)
	}
	return a
}

func TestPercentScaling(t *testing.T) {
	if got := fixed(Percent(0.012345), 4); got != "1.2345" {
		t.Errorf("Percent: expected 1.2345, got %s", got)
	}
	if got := fixed(PercentSquared(0.0004), 4); got != "4.0000" {
		t.Errorf("PercentSquared: expected 4.0000, got %s", got)
	}
	if got := fixed(Percent(-0.5), 2); got != "-50.00" {
		t.Errorf("Percent: expected -50.00, got %s", got)
	}
}

func TestFormatAnalysis_Sections(t *testing.T) {
	a := sampleAnalysis(t)
	out := FormatAnalysis(a)
	for _, want := range []string{
		"2024-06-04 to 2024-06-09",
		"Daily returns in % (first rows):",
		"Descriptive statistics:",
		"Assets by mean return (highest first):",
		"Assets by volatility (highest first):",
		"Assets by interquartile range (widest first) (%):",
		"Sample covariance BABA/EBAY:",
		"51 portfolios BABA/EBAY:",
		"Portfolio with the highest expected return:",
		"Recommendation: minimum-variance portfolio (lowest risk):",
		" MVP",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	// The preview shows five of the six return rows; the last date only appears in the header.
	if n := strings.Count(out, "2024-06-09"); n != 1 {
		t.Errorf("expected the sixth return row to be omitted, found the date %d times", n)
	}
	if !strings.Contains(out, "2024-06-08") {
		t.Error("expected the fifth return row in the preview")
	}
}

func TestFormatSummary(t *testing.T) {
	a := sampleAnalysis(t)
	out := FormatSummary(a)
	if !strings.Contains(out, "<b>BABA / EBAY</b>") || !strings.Contains(out, "MVP:") || !strings.Contains(out, "Max return:") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestFormatSummary_EscapesAssetNames(t *testing.T) {
	a := sampleAnalysis(t)
	a.Pairs[0].AssetA, a.Pairs[0].Frontier.AssetA = "S&P500", "S&P500"
	a.Pairs[0].AssetB, a.Pairs[0].Frontier.AssetB = "A<B", "A<B"

	out := FormatSummary(a)
	if !strings.Contains(out, "<b>S&amp;P500 / A&lt;B</b>") {
		t.Errorf("asset names not escaped:\n%s", out)
	}
	if strings.Contains(out, "S&P500") || strings.Contains(out, "A<B") {
		t.Errorf("raw asset names leaked into HTML:\n%s", out)
	}
}

func TestWriteFrontier_SharedRowCarriesBothMarkers(t *testing.T) {
	pts := []model.PortfolioPoint{
		{WeightA: 0, WeightB: 1},
		{WeightA: 1, WeightB: 0},
	}
	f := &model.Frontier{
		AssetA: "A", AssetB: "B", Points: pts,
		MaxReturn: pts[0], MinVariance: pts[0],
	}
	var b strings.Builder
	writeFrontier(&b, f)
	if !strings.Contains(b.String(), "0 MVP max") {
		t.Errorf("expected row 0 to carry both markers:\n%s", b.String())
	}
}
