package analytics

import (
	"sort"
	"time"

	"retail-insight/models"
)

// DefaultSlowMovingThresholdDays gates which products are flagged at all.
const DefaultSlowMovingThresholdDays = 30

// DetectSlowMoving flags products whose last sale is at least thresholdDays
// before the dataset's last observed date (the lexicographic max of the
// parseable dates, valid because the format is zero-padded). Tiers: >= 60
// days HIGH, >= 30 MEDIUM, else LOW. The LOW branch is unreachable while
// thresholdDays >= 30; it is kept for callers passing a smaller threshold.
// Output is sorted descending by days since last sale.
func DetectSlowMoving(records []models.SalesRecord, thresholdDays int) []models.SlowMovingAlert {
	if thresholdDays <= 0 {
		thresholdDays = DefaultSlowMovingThresholdDays
	}

	var lastObserved string
	lastSale := make(map[string]string)
	totalQty := make(map[string]float64)
	order := make([]string, 0)

	for _, r := range records {
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			continue
		}
		if r.Date > lastObserved {
			lastObserved = r.Date
		}
		if _, ok := lastSale[r.Product]; !ok {
			order = append(order, r.Product)
		}
		if r.Date > lastSale[r.Product] {
			lastSale[r.Product] = r.Date
		}
		totalQty[r.Product] += r.Quantity
	}
	if lastObserved == "" {
		return []models.SlowMovingAlert{}
	}
	lastDate, _ := time.Parse("2006-01-02", lastObserved)

	alerts := make([]models.SlowMovingAlert, 0)
	for _, product := range order {
		productLast, _ := time.Parse("2006-01-02", lastSale[product])
		days := int(lastDate.Sub(productLast).Hours() / 24)
		if days < thresholdDays {
			continue
		}

		alert := models.SlowMovingAlert{
			Product:           product,
			LastSaleDate:      lastSale[product],
			DaysSinceLastSale: days,
			TotalQuantity:     totalQty[product],
		}
		switch {
		case days >= 60:
			alert.RiskLevel = models.RiskHigh
			alert.Recommendation = "Liquidate or halt reorder"
		case days >= 30:
			alert.RiskLevel = models.RiskMedium
			alert.Recommendation = "Promote or discount"
		default:
			alert.RiskLevel = models.RiskLow
			alert.Recommendation = "Continue monitoring"
		}
		alerts = append(alerts, alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysSinceLastSale > alerts[j].DaysSinceLastSale
	})
	return alerts
}
