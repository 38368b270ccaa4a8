package analytics

import (
	"sort"

	"retail-insight/models"
)

// AnalyzeBrands aggregates revenue and quantity by the records' precomputed
// brand field, sorted descending by revenue.
func AnalyzeBrands(records []models.SalesRecord) []models.BrandMetric {
	byBrand := make(map[string]*models.BrandMetric)
	order := make([]string, 0)
	var totalRevenue float64

	for _, r := range records {
		m, ok := byBrand[r.Brand]
		if !ok {
			m = &models.BrandMetric{Brand: r.Brand}
			byBrand[r.Brand] = m
			order = append(order, r.Brand)
		}
		m.Revenue += r.Amount
		m.Quantity += r.Quantity
		totalRevenue += r.Amount
	}

	brands := make([]models.BrandMetric, 0, len(order))
	for _, name := range order {
		m := byBrand[name]
		m.Percent = percentOf(m.Revenue, totalRevenue)
		brands = append(brands, *m)
	}

	sort.SliceStable(brands, func(i, j int) bool { return brands[i].Revenue > brands[j].Revenue })
	return brands
}
