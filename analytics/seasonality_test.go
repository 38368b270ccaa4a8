package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insight/models"
)

func TestAnalyzeSeasonality(t *testing.T) {
	records := []models.SalesRecord{
		rec("2024-02-10", "Aircon", "a", 1, 100),
		rec("2024-01-05", "Fridge", "b", 2, 200),
		rec("2024-01-20", "Aircon", "c", 4, 300),
		rec("2024-01-25", "Fridge", "d", 1, 50),
	}

	months := AnalyzeSeasonality(records)
	require.Len(t, months, 2)

	assert.Equal(t, "2024-01", months[0].Month)
	assert.Equal(t, 7.0, months[0].TotalQuantity)
	assert.Equal(t, 550.0, months[0].TotalAmount)
	assert.Equal(t, "Aircon", months[0].TopCategory)

	assert.Equal(t, "2024-02", months[1].Month)
}

func TestAnalyzeSeasonalityTopCategoryTie(t *testing.T) {
	// Equal quantities: the first category encountered wins.
	records := []models.SalesRecord{
		rec("2024-01-01", "Fridge", "a", 2, 100),
		rec("2024-01-02", "Aircon", "b", 2, 100),
	}
	months := AnalyzeSeasonality(records)
	require.Len(t, months, 1)
	assert.Equal(t, "Fridge", months[0].TopCategory)
}

func TestAnalyzeSeasonalityShortDateKey(t *testing.T) {
	records := []models.SalesRecord{
		{Date: models.DateUnknown, Category: "x", Product: "a", Quantity: 1, Amount: 10, Brand: models.BrandOther},
	}
	months := AnalyzeSeasonality(records)
	require.Len(t, months, 1)
	assert.Equal(t, models.DateUnknown, months[0].Month)
}
