package analytics

import "retail-insight/models"

// ForecastNextMonth predicts next month's revenue and quantity as the simple
// mean of the last three months (or fewer when unavailable) of the monthly
// series, which must be sorted ascending. Trend compares only the last two
// months: above +5% is UP, below -5% is DOWN, else STABLE. Confidence is a
// rule on history length: >= 6 months HIGH, < 3 LOW, else MEDIUM. An empty
// series returns the zero forecast with LOW confidence rather than failing.
func ForecastNextMonth(monthly []models.MonthlySales) models.SalesForecast {
	forecast := models.SalesForecast{
		Trend:           models.TrendStable,
		Confidence:      models.ConfidenceLow,
		MonthsOfHistory: len(monthly),
	}
	if len(monthly) == 0 {
		return forecast
	}

	window := monthly
	if len(window) > 3 {
		window = window[len(window)-3:]
	}

	var sumRevenue, sumQty float64
	for _, m := range window {
		sumRevenue += m.TotalAmount
		sumQty += m.TotalQuantity
	}
	forecast.ForecastRevenue = round2(sumRevenue / float64(len(window)))
	forecast.ForecastQuantity = round2(sumQty / float64(len(window)))

	if len(window) >= 2 {
		prev := window[len(window)-2].TotalAmount
		last := window[len(window)-1].TotalAmount
		var change float64
		if prev != 0 {
			change = (last - prev) / prev * 100
		}
		forecast.TrendPercent = round1(change)
		switch {
		case change > 5:
			forecast.Trend = models.TrendUp
		case change < -5:
			forecast.Trend = models.TrendDown
		}
	}

	switch {
	case len(monthly) >= 6:
		forecast.Confidence = models.ConfidenceHigh
	case len(monthly) >= 3:
		forecast.Confidence = models.ConfidenceMedium
	}
	return forecast
}
