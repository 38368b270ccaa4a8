package analytics

import "retail-insight/models"

// Filter narrows the canonical record set before re-running an aggregation.
// Empty fields match everything. Date bounds compare the zero-padded
// YYYY-MM-DD strings directly; records with unparseable dates are excluded
// once either bound is set.
type Filter struct {
	Category  string
	Brand     string
	Product   string
	StartDate string
	EndDate   string
}

// IsZero reports whether the filter matches every record.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Apply returns the subset of records matching the filter. The input slice
// is never mutated; aggregations stay safe to re-run on any subset.
func (f Filter) Apply(records []models.SalesRecord) []models.SalesRecord {
	if f.IsZero() {
		return records
	}
	subset := make([]models.SalesRecord, 0, len(records))
	for _, r := range records {
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		if f.Brand != "" && r.Brand != f.Brand {
			continue
		}
		if f.Product != "" && r.Product != f.Product {
			continue
		}
		if f.StartDate != "" && (len(r.Date) != 10 || r.Date < f.StartDate) {
			continue
		}
		if f.EndDate != "" && (len(r.Date) != 10 || r.Date > f.EndDate) {
			continue
		}
		subset = append(subset, r)
	}
	return subset
}
