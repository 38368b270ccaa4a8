package analytics

import "retail-insight/models"

// Caps on the sample handed to the AI service. The model sees the head, a
// mid-rank slice, the tail, and at most a year of seasonality.
const (
	sampleTopCount    = 10
	sampleMidCount    = 5
	sampleBottomCount = 5
	sampleMonthCount  = 12
)

// BuildAnalysisSample reduces aggregation output to a bounded payload for
// the external AI call. Small datasets fit entirely into TopProducts; the
// mid and bottom slices appear only when they cannot overlap the head.
func BuildAnalysisSample(performance []models.ProductPerformance, monthly []models.MonthlySales) models.AnalysisSample {
	sample := models.AnalysisSample{ProductCount: len(performance)}
	for _, p := range performance {
		sample.TotalRevenue += p.TotalAmount
	}

	top := sampleTopCount
	if top > len(performance) {
		top = len(performance)
	}
	sample.TopProducts = performance[:top]

	if len(performance) > sampleTopCount+sampleMidCount+sampleBottomCount {
		mid := len(performance) / 2
		sample.MidProducts = performance[mid : mid+sampleMidCount]
		sample.BottomProducts = performance[len(performance)-sampleBottomCount:]
	} else if len(performance) > sampleTopCount {
		sample.BottomProducts = performance[sampleTopCount:]
	}

	if len(monthly) > sampleMonthCount {
		monthly = monthly[len(monthly)-sampleMonthCount:]
	}
	sample.Monthly = monthly
	return sample
}
