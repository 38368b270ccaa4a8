package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insight/models"
)

func TestAnalyzePriceBandsSingleRecord(t *testing.T) {
	records := []models.SalesRecord{rec("2024-01-01", "TV", "a", 1, 15000)}

	bands := AnalyzePriceBands(records)
	require.Len(t, bands, 5)

	assert.Equal(t, "10,000-25,000", bands[2].Label)
	assert.Equal(t, 1, bands[2].SalesCount)
	assert.Equal(t, 15000.0, bands[2].Revenue)
	assert.Equal(t, 100.0, bands[2].Percent)

	for i, band := range bands {
		if i == 2 {
			continue
		}
		assert.Zero(t, band.SalesCount)
		assert.Zero(t, band.Revenue)
	}
}

func TestAnalyzePriceBandsBoundaries(t *testing.T) {
	records := []models.SalesRecord{
		rec("2024-01-01", "x", "a", 1, 2999),
		rec("2024-01-01", "x", "b", 1, 3000),
		rec("2024-01-01", "x", "c", 1, 40000),
		rec("2024-01-01", "x", "d", 2, 10000), // unit price 5000
		rec("2024-01-01", "x", "e", 0, 500),   // zero quantity buckets at unit price 0
	}

	bands := AnalyzePriceBands(records)
	assert.Equal(t, 2, bands[0].SalesCount) // 2999 and the zero-quantity record
	assert.Equal(t, 2, bands[1].SalesCount) // 3000 and 5000
	assert.Equal(t, 0, bands[2].SalesCount)
	assert.Equal(t, 0, bands[3].SalesCount)
	assert.Equal(t, 1, bands[4].SalesCount) // 40000 is inclusive on the top band
}

func TestAnalyzePriceBandsFixedOrder(t *testing.T) {
	bands := AnalyzePriceBands(nil)
	labels := make([]string, len(bands))
	for i, b := range bands {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Under 3,000", "3,000-10,000", "10,000-25,000", "25,000-40,000", "40,000+"}, labels)
}
