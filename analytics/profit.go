package analytics

import (
	"sort"

	"retail-insight/models"
)

// AnalyzeProfitMargins builds the per-product margin view. It activates only
// when at least one record carries a defined, positive unit cost; otherwise
// it returns an empty slice, which callers must read as "no cost data", not
// "zero margin everywhere". Products with zero revenue are excluded. Sorted
// descending by margin percent.
func AnalyzeProfitMargins(records []models.SalesRecord) []models.ProductProfit {
	hasCost := false
	for _, r := range records {
		if r.Cost != nil && *r.Cost > 0 {
			hasCost = true
			break
		}
	}
	if !hasCost {
		return []models.ProductProfit{}
	}

	byProduct := make(map[string]*models.ProductProfit)
	order := make([]string, 0)
	for _, r := range records {
		p, ok := byProduct[r.Product]
		if !ok {
			p = &models.ProductProfit{Product: r.Product}
			byProduct[r.Product] = p
			order = append(order, r.Product)
		}
		p.Revenue += r.Amount
		if r.Cost != nil {
			p.Cost += *r.Cost * r.Quantity
		}
	}

	profits := make([]models.ProductProfit, 0, len(order))
	for _, name := range order {
		p := byProduct[name]
		if p.Revenue == 0 {
			continue
		}
		p.GrossProfit = round2(p.Revenue - p.Cost)
		p.MarginPercent = round1((p.Revenue - p.Cost) / p.Revenue * 100)
		profits = append(profits, *p)
	}

	sort.SliceStable(profits, func(i, j int) bool {
		return profits[i].MarginPercent > profits[j].MarginPercent
	})
	return profits
}
