package calculator

import (
	"math"
	"time"

	"RiskFrontier/internal/model"
)

var baseDate = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func series(symbol string, closes ...float64) model.PriceSeries {
	pts := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		pts[i] = model.PricePoint{Date: baseDate.AddDate(0, 0, i), Close: c}
	}
	return model.PriceSeries{Symbol: symbol, Points: pts}
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func relEqual(a, b, rel float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= rel*scale+1e-18
}

// sampleTable builds a four-asset table with uneven, correlated moves.
func sampleTable() model.PriceTable {
	n := 60
	sp, vix, baba, ebay := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	sp[0], vix[0], baba[0], ebay[0] = 4000, 20, 90, 45
	for i := 1; i < n; i++ {
		shock := math.Sin(float64(i)*1.7) * 0.01
		sp[i] = sp[i-1] * math.Exp(shock+0.0004)
		vix[i] = vix[i-1] * math.Exp(-4*shock+math.Cos(float64(i))*0.02)
		baba[i] = baba[i-1] * math.Exp(0.02*math.Sin(float64(i)*0.9)-0.0003)
		ebay[i] = ebay[i-1] * math.Exp(0.5*shock+0.01*math.Cos(float64(i)*2.3))
	}
	return model.PriceTable{Series: []model.PriceSeries{
		series("SP500", sp...),
		series("VIX", vix...),
		series("BABA", baba...),
		series("EBAY", ebay...),
	}}
}
