package analytics

import (
	"fmt"
	"strconv"

	"retail-insight/models"
)

// CompareMonths computes month-over-month and year-over-year revenue growth
// for the monthly series (sorted ascending). Growth fields stay nil — not
// zero — when the prior period is missing or had zero revenue, so the output
// is sparse by design.
func CompareMonths(monthly []models.MonthlySales) []models.MonthlyComparison {
	revenueByMonth := make(map[string]float64, len(monthly))
	for _, m := range monthly {
		revenueByMonth[m.Month] = m.TotalAmount
	}

	comparisons := make([]models.MonthlyComparison, 0, len(monthly))
	for i, m := range monthly {
		cmp := models.MonthlyComparison{
			Month:    m.Month,
			Revenue:  m.TotalAmount,
			Quantity: m.TotalQuantity,
		}

		if i > 0 {
			if prev := monthly[i-1].TotalAmount; prev != 0 {
				growth := round1((m.TotalAmount - prev) / prev * 100)
				cmp.MoMGrowth = &growth
			}
		}

		if lastYear, ok := sameMonthLastYear(m.Month); ok {
			if prev, exists := revenueByMonth[lastYear]; exists && prev != 0 {
				growth := round1((m.TotalAmount - prev) / prev * 100)
				cmp.YoYGrowth = &growth
			}
		}

		comparisons = append(comparisons, cmp)
	}
	return comparisons
}

// sameMonthLastYear maps "2024-03" to "2023-03". Keys that are not in
// YYYY-MM form (the unknown-date bucket) have no prior-year counterpart.
func sameMonthLastYear(month string) (string, bool) {
	if len(month) != 7 || month[4] != '-' {
		return "", false
	}
	year, err := strconv.Atoi(month[:4])
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%04d-%s", year-1, month[5:]), true
}
