package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insight/models"
)

func TestAnalyzeBrands(t *testing.T) {
	records := []models.SalesRecord{
		rec("2024-01-01", "Fridge", "LG Fridge X", 1, 20000),
		rec("2024-01-02", "TV", "Samsung TV Q80", 2, 60000),
		rec("2024-01-03", "Fridge", "LG Fridge Y", 1, 30000),
		rec("2024-01-04", "Fan", "generic fan", 1, 900),
	}

	brands := AnalyzeBrands(records)
	require.Len(t, brands, 3)

	// Sorted descending by revenue.
	assert.Equal(t, "Samsung (三星)", brands[0].Brand)
	assert.Equal(t, 60000.0, brands[0].Revenue)
	assert.Equal(t, "LG (樂金)", brands[1].Brand)
	assert.Equal(t, 50000.0, brands[1].Revenue)
	assert.Equal(t, 2.0, brands[1].Quantity)
	assert.Equal(t, models.BrandOther, brands[2].Brand)

	var pct float64
	for _, b := range brands {
		pct += b.Percent
	}
	assert.InDelta(t, 100.0, pct, 1e-9)
}

func TestAnalyzeDailyTrend(t *testing.T) {
	records := []models.SalesRecord{
		rec("2024-01-02", "x", "a", 1, 100),
		rec("2024-01-01", "x", "b", 1, 200),
		rec("2024-01-02", "x", "c", 1, 300),
	}

	days := AnalyzeDailyTrend(records)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.Equal(t, 1, days[0].Orders)
	assert.Equal(t, "2024-01-02", days[1].Date)
	assert.Equal(t, 400.0, days[1].Revenue)
	assert.Equal(t, 2, days[1].Orders)
}
