package analytics

import (
	"math"
	"sort"

	"retail-insight/models"
)

// DefaultLeadTimeDays is the replenishment lead time assumed when the caller
// does not supply one.
const DefaultLeadTimeDays = 7

// z-score for a 95% one-sided service level under normally distributed demand.
const serviceLevelZ = 1.65

// CalculateInventoryMetrics derives reorder figures per product:
//
//	avgDailySales     = product quantity / distinct dates in the dataset (min 1)
//	safetyStock       = ceil(1.65 * stdDev * sqrt(leadTimeDays))
//	reorderPoint      = ceil(safetyStock + avgDailySales * leadTimeDays)
//	suggestedOrderQty = ceil(avgDailySales * 30)
//
// stdDev is the population standard deviation over transaction-level
// quantities, not over daily totals. That understates or overstates demand
// variance depending on how many transactions land on one day; it is kept
// as-is because downstream safety-stock figures are calibrated against it.
func CalculateInventoryMetrics(records []models.SalesRecord, leadTimeDays int) []models.InventoryMetric {
	if leadTimeDays <= 0 {
		leadTimeDays = DefaultLeadTimeDays
	}

	dates := make(map[string]bool)
	quantities := make(map[string][]float64)
	order := make([]string, 0)
	for _, r := range records {
		dates[r.Date] = true
		if _, ok := quantities[r.Product]; !ok {
			order = append(order, r.Product)
		}
		quantities[r.Product] = append(quantities[r.Product], r.Quantity)
	}

	totalDays := len(dates)
	if totalDays < 1 {
		totalDays = 1
	}

	metrics := make([]models.InventoryMetric, 0, len(order))
	for _, product := range order {
		sample := quantities[product]

		var totalQty float64
		for _, q := range sample {
			totalQty += q
		}
		avgDaily := totalQty / float64(totalDays)

		var sumSq float64
		mean := totalQty / float64(len(sample))
		for _, q := range sample {
			sumSq += (q - mean) * (q - mean)
		}
		stdDev := math.Sqrt(sumSq / float64(len(sample)))

		safetyStock := int(math.Ceil(serviceLevelZ * stdDev * math.Sqrt(float64(leadTimeDays))))
		reorderPoint := int(math.Ceil(float64(safetyStock) + avgDaily*float64(leadTimeDays)))
		suggestedQty := int(math.Ceil(avgDaily * 30))

		metrics = append(metrics, models.InventoryMetric{
			Product:           product,
			TotalQuantity:     totalQty,
			AvgDailySales:     round2(avgDaily),
			StdDev:            round2(stdDev),
			SafetyStock:       safetyStock,
			ReorderPoint:      reorderPoint,
			SuggestedOrderQty: suggestedQty,
		})
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].AvgDailySales > metrics[j].AvgDailySales
	})
	return metrics
}
