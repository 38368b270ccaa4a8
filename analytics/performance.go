package analytics

import (
	"math"
	"sort"

	"retail-insight/models"
)

// AnalyzeProductPerformance groups records by product name and builds the
// ABC/Pareto view. Classes are assigned by walking the revenue-descending
// list and accumulating amount share: cumulative <= 80% is A, <= 95% is B,
// the rest is C. Classes are therefore rank-dependent — running this on a
// filtered subset reclassifies against that subset's totals.
func AnalyzeProductPerformance(records []models.SalesRecord) []models.ProductPerformance {
	byProduct := make(map[string]*models.ProductPerformance)
	order := make([]string, 0)
	var totalAmount float64

	for _, r := range records {
		p, ok := byProduct[r.Product]
		if !ok {
			p = &models.ProductPerformance{Product: r.Product}
			byProduct[r.Product] = p
			order = append(order, r.Product)
		}
		p.TotalQuantity += r.Quantity
		p.TotalAmount += r.Amount
		p.SalesFrequency++
		totalAmount += r.Amount
	}

	products := make([]models.ProductPerformance, 0, len(order))
	for _, name := range order {
		p := byProduct[name]
		if p.TotalQuantity > 0 {
			p.AveragePrice = math.Round(p.TotalAmount / p.TotalQuantity)
		}
		p.AmountShare = percentOf(p.TotalAmount, totalAmount)
		p.VelocityScore = math.Min(100, p.TotalQuantity*1.5+float64(p.SalesFrequency)*0.5)
		products = append(products, *p)
	}

	// Stable keeps input order on revenue ties.
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].TotalAmount > products[j].TotalAmount
	})

	var cumulative float64
	for i := range products {
		cumulative += products[i].AmountShare
		products[i].CumulativeShare = cumulative
		switch {
		case cumulative <= 80:
			products[i].ABCClass = models.ABCClassA
		case cumulative <= 95:
			products[i].ABCClass = models.ABCClassB
		default:
			products[i].ABCClass = models.ABCClassC
		}
	}
	return products
}

// ABCClassMap reduces a performance view to a product -> class lookup, used
// to pin classes computed against the full dataset while filtered views
// recompute everything else locally.
func ABCClassMap(products []models.ProductPerformance) map[string]string {
	classes := make(map[string]string, len(products))
	for _, p := range products {
		classes[p.Product] = p.ABCClass
	}
	return classes
}
