package analytics

import (
	"sort"

	"retail-insight/models"
)

// AnalyzeSeasonality groups records by year-month (the first 7 characters of
// the date; shorter strings such as the unknown marker are used whole) and
// sums quantity and revenue per month. TopCategory is the category with the
// highest quantity that month; ties keep the first category encountered.
// Output is sorted ascending by month key, which is chronological because
// the key format is zero-padded YYYY-MM.
func AnalyzeSeasonality(records []models.SalesRecord) []models.MonthlySales {
	type monthAgg struct {
		row           models.MonthlySales
		categoryQty   map[string]float64
		categoryOrder []string
	}

	byMonth := make(map[string]*monthAgg)
	for _, r := range records {
		month := r.Date
		if len(month) >= 7 {
			month = month[:7]
		}
		agg, ok := byMonth[month]
		if !ok {
			agg = &monthAgg{
				row:         models.MonthlySales{Month: month},
				categoryQty: make(map[string]float64),
			}
			byMonth[month] = agg
		}
		agg.row.TotalQuantity += r.Quantity
		agg.row.TotalAmount += r.Amount
		if _, seen := agg.categoryQty[r.Category]; !seen {
			agg.categoryOrder = append(agg.categoryOrder, r.Category)
		}
		agg.categoryQty[r.Category] += r.Quantity
	}

	months := make([]models.MonthlySales, 0, len(byMonth))
	for _, agg := range byMonth {
		var best string
		var bestQty float64
		for i, cat := range agg.categoryOrder {
			if i == 0 || agg.categoryQty[cat] > bestQty {
				best = cat
				bestQty = agg.categoryQty[cat]
			}
		}
		agg.row.TopCategory = best
		months = append(months, agg.row)
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}
