package analytics

import (
	"sort"

	"retail-insight/models"
)

// AnalyzeDailyTrend sums revenue per exact date string and counts records as
// orders (one record = one order; the schema has no order identifiers).
// Output is sorted ascending by date string.
func AnalyzeDailyTrend(records []models.SalesRecord) []models.DailyTrendPoint {
	byDate := make(map[string]*models.DailyTrendPoint)
	for _, r := range records {
		p, ok := byDate[r.Date]
		if !ok {
			p = &models.DailyTrendPoint{Date: r.Date}
			byDate[r.Date] = p
		}
		p.Revenue += r.Amount
		p.Orders++
	}

	points := make([]models.DailyTrendPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
