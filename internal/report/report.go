package report

import (
	"fmt"
	"html"
	"strings"
	"text/tabwriter"
	"time"

	"RiskFrontier/internal/analysis"
	"RiskFrontier/internal/model"

	"github.com/shopspring/decimal"
)

// headRows is how many return rows the report previews.
const headRows = 5

// FormatAnalysis renders the full console report of an analysis run.
func FormatAnalysis(a *model.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("RiskFrontier | %s to %s | %d daily returns\n\n",
		a.Start.Format(time.DateOnly), a.End.Format(time.DateOnly), a.Observations))

	writeReturnsHead(&b, a.Returns)

	b.WriteString("\nDescriptive statistics:\n")
	writeStats(&b, a.Stats)

	b.WriteString("\nAssets by mean return (highest first):\n")
	writeStats(&b, analysis.RankByMean(a.Stats))

	b.WriteString("\nAssets by volatility (highest first):\n")
	writeStats(&b, analysis.RankByVolatility(a.Stats))

	b.WriteString("\nAssets by interquartile range (widest first) (%):\n")
	writeQuantiles(&b, analysis.RankByIQR(a.Quantiles))

	for _, p := range a.Pairs {
		b.WriteString(fmt.Sprintf("\nSample covariance %s/%s: %s (correlation %s)\n",
			p.AssetA, p.AssetB,
			fixed(decimal.NewFromFloat(p.Covariance), 8),
			fixed(decimal.NewFromFloat(p.Correlation), 4)))
	}

	for _, p := range a.Pairs {
		writeFrontier(&b, p.Frontier)
	}
	return b.String()
}

// FormatSummary renders a short HTML digest of each pair's designated portfolios.
func FormatSummary(a *model.Analysis) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>RiskFrontier</b> | %s → %s (%d returns)\n",
		a.Start.Format(time.DateOnly), a.End.Format(time.DateOnly), a.Observations))
	for _, p := range a.Pairs {
		f := p.Frontier
		assetA, assetB := html.EscapeString(f.AssetA), html.EscapeString(f.AssetB)
		b.WriteString(fmt.Sprintf("\n<b>%s / %s</b> (ρ=%s)\n", assetA, assetB, fixed(decimal.NewFromFloat(p.Correlation), 2)))
		b.WriteString(fmt.Sprintf("  Max return: %s%% %s / %s%% %s → E[r] %s%%, σ %s%%\n",
			fixed(Percent(f.MaxReturn.WeightA), 0), assetA, fixed(Percent(f.MaxReturn.WeightB), 0), assetB,
			fixed(Percent(f.MaxReturn.ExpectedReturn), 4), fixed(Percent(f.MaxReturn.Volatility), 4)))
		b.WriteString(fmt.Sprintf("  MVP: %s%% %s / %s%% %s → E[r] %s%%, σ %s%%\n",
			fixed(Percent(f.MinVariance.WeightA), 0), assetA, fixed(Percent(f.MinVariance.WeightB), 0), assetB,
			fixed(Percent(f.MinVariance.ExpectedReturn), 4), fixed(Percent(f.MinVariance.Volatility), 4)))
	}
	return b.String()
}

func newTable(b *strings.Builder) *tabwriter.Writer {
	return tabwriter.NewWriter(b, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func writeReturnsHead(b *strings.Builder, rt *model.ReturnTable) {
	if rt == nil {
		return
	}
	b.WriteString("Daily returns in % (first rows):\n")
	w := newTable(b)
	fmt.Fprint(w, "Date\t")
	for _, sym := range rt.Symbols {
		fmt.Fprintf(w, "%s\t", sym)
	}
	fmt.Fprintln(w)
	for i := 0; i < len(rt.Dates) && i < headRows; i++ {
		fmt.Fprintf(w, "%s\t", rt.Dates[i].Format(time.DateOnly))
		for _, sym := range rt.Symbols {
			fmt.Fprintf(w, "%s\t", fixed(Percent(rt.Returns[sym][i]), 4))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func writeStats(b *strings.Builder, stats []model.DescriptiveStats) {
	w := newTable(b)
	fmt.Fprintln(w, "Asset\tMean (%)\tVariance (%^2)\tStd dev (%)\t")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", s.Symbol,
			fixed(Percent(s.Mean), 4), fixed(PercentSquared(s.Variance), 4), fixed(Percent(s.StdDev), 4))
	}
	w.Flush()
}

func writeQuantiles(b *strings.Builder, qs []model.QuantileSummary) {
	w := newTable(b)
	fmt.Fprintln(w, "Asset\tQ1\tQ3\tIQR\t")
	for _, q := range qs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", q.Symbol,
			fixed(Percent(q.Q1), 4), fixed(Percent(q.Q3), 4), fixed(Percent(q.IQR), 4))
	}
	w.Flush()
}

func writeFrontier(b *strings.Builder, f *model.Frontier) {
	b.WriteString(fmt.Sprintf("\n%d portfolios %s/%s:\n", len(f.Points), f.AssetA, f.AssetB))
	w := newTable(b)
	fmt.Fprintf(w, "#\tWeight %s (%%)\tWeight %s (%%)\tExpected return (%%)\tVolatility (%%)\t\n", f.AssetA, f.AssetB)
	for i, p := range f.Points {
		marker := ""
		if i == f.MinVarianceIndex {
			marker += " MVP"
		}
		if i == f.MaxReturnIndex {
			marker += " max"
		}
		fmt.Fprintf(w, "%d%s\t%s\t%s\t%s\t%s\t\n", i, marker,
			fixed(Percent(p.WeightA), 2), fixed(Percent(p.WeightB), 2),
			fixed(Percent(p.ExpectedReturn), 4), fixed(Percent(p.Volatility), 4))
	}
	w.Flush()

	b.WriteString("\nPortfolio with the highest expected return:\n")
	writePoint(b, f, f.MaxReturn)
	b.WriteString("\nRecommendation: minimum-variance portfolio (lowest risk):\n")
	writePoint(b, f, f.MinVariance)
}

func writePoint(b *strings.Builder, f *model.Frontier, p model.PortfolioPoint) {
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Weight %s (%%)\t%s\n", f.AssetA, fixed(Percent(p.WeightA), 2))
	fmt.Fprintf(w, "  Weight %s (%%)\t%s\n", f.AssetB, fixed(Percent(p.WeightB), 2))
	fmt.Fprintf(w, "  Expected return (%%)\t%s\n", fixed(Percent(p.ExpectedReturn), 4))
	fmt.Fprintf(w, "  Volatility (%%)\t%s\n", fixed(Percent(p.Volatility), 4))
	w.Flush()
}
