package analytics

import (
	"math"

	"retail-insight/models"
)

// The five fixed price bands, in display order. Max is exclusive.
var priceBands = []struct {
	label string
	min   float64
	max   float64
}{
	{"Under 3,000", 0, 3000},
	{"3,000-10,000", 3000, 10000},
	{"10,000-25,000", 10000, 25000},
	{"25,000-40,000", 25000, 40000},
	{"40,000+", 40000, math.Inf(1)},
}

// AnalyzePriceBands buckets each record's unit price (amount/quantity, 0 when
// quantity is 0) into the fixed bands and aggregates count and revenue per
// band. Output keeps the fixed band order, not value order.
func AnalyzePriceBands(records []models.SalesRecord) []models.PriceBand {
	bands := make([]models.PriceBand, len(priceBands))
	for i, b := range priceBands {
		bands[i].Label = b.label
	}

	var totalRevenue float64
	for _, r := range records {
		var unitPrice float64
		if r.Quantity > 0 {
			unitPrice = r.Amount / r.Quantity
		}
		for i, b := range priceBands {
			if unitPrice >= b.min && unitPrice < b.max {
				bands[i].SalesCount++
				bands[i].Revenue += r.Amount
				break
			}
		}
		totalRevenue += r.Amount
	}

	for i := range bands {
		bands[i].Percent = percentOf(bands[i].Revenue, totalRevenue)
	}
	return bands
}
