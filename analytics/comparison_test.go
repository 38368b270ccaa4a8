package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insight/models"
)

func TestCompareMonthsMoM(t *testing.T) {
	monthly := []models.MonthlySales{
		month("2024-01", 10, 1000),
		month("2024-02", 10, 1500),
		month("2024-03", 10, 1200),
	}

	cmp := CompareMonths(monthly)
	require.Len(t, cmp, 3)

	assert.Nil(t, cmp[0].MoMGrowth)
	require.NotNil(t, cmp[1].MoMGrowth)
	assert.Equal(t, 50.0, *cmp[1].MoMGrowth)
	require.NotNil(t, cmp[2].MoMGrowth)
	assert.Equal(t, -20.0, *cmp[2].MoMGrowth)
}

func TestCompareMonthsMoMOmittedOnZeroBase(t *testing.T) {
	monthly := []models.MonthlySales{
		month("2024-01", 0, 0),
		month("2024-02", 10, 1000),
	}
	cmp := CompareMonths(monthly)
	require.Len(t, cmp, 2)
	// Growth from a zero base is omitted, not reported as 0.
	assert.Nil(t, cmp[1].MoMGrowth)
}

func TestCompareMonthsYoY(t *testing.T) {
	monthly := []models.MonthlySales{
		month("2023-03", 10, 1000),
		month("2024-02", 10, 900),
		month("2024-03", 10, 1100),
	}

	cmp := CompareMonths(monthly)
	require.Len(t, cmp, 3)

	assert.Nil(t, cmp[0].YoYGrowth)
	assert.Nil(t, cmp[1].YoYGrowth) // no 2023-02 in the series
	require.NotNil(t, cmp[2].YoYGrowth)
	assert.Equal(t, 10.0, *cmp[2].YoYGrowth)
}

func TestCompareMonthsRounding(t *testing.T) {
	monthly := []models.MonthlySales{
		month("2024-01", 10, 300),
		month("2024-02", 10, 400),
	}
	cmp := CompareMonths(monthly)
	require.NotNil(t, cmp[1].MoMGrowth)
	// 100/300 = 33.333... rounded to 1 decimal.
	assert.Equal(t, 33.3, *cmp[1].MoMGrowth)
}

func TestCompareMonthsUnknownKey(t *testing.T) {
	monthly := []models.MonthlySales{
		month(models.DateUnknown, 1, 100),
		month("2024-01", 10, 1000),
	}
	cmp := CompareMonths(monthly)
	require.Len(t, cmp, 2)
	assert.Nil(t, cmp[0].YoYGrowth)
}
