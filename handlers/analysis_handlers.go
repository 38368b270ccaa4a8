package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"retail-insight/analytics"
	"retail-insight/models"
	"retail-insight/store"
)

// filteredRecords resolves the dataset and applies the optional query
// filters. A nil dataset means the 404 response has already been written.
func filteredRecords(c *fiber.Ctx) (*store.Dataset, []models.SalesRecord, error) {
	ds, ok := store.Datasets.Get(c.Params("datasetId"))
	if !ok {
		return nil, nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Dataset not found"})
	}

	filter := analytics.Filter{
		Category:  c.Query("category"),
		Brand:     c.Query("brand"),
		Product:   c.Query("product"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	return ds, filter.Apply(ds.Records), nil
}

// HandleGetSummary returns the headline dashboard figures for the filtered
// record set.
// GET /api/v1/datasets/:datasetId/summary
func HandleGetSummary(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}

	var totalRevenue, totalQuantity float64
	products := make(map[string]bool)
	firstDate, lastDate := "", ""
	for _, r := range records {
		totalRevenue += r.Amount
		totalQuantity += r.Quantity
		products[r.Product] = true
		if len(r.Date) == 10 {
			if firstDate == "" || r.Date < firstDate {
				firstDate = r.Date
			}
			if r.Date > lastDate {
				lastDate = r.Date
			}
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"totalRevenue":  totalRevenue,
		"totalQuantity": totalQuantity,
		"recordCount":   len(records),
		"productCount":  len(products),
		"firstDate":     firstDate,
		"lastDate":      lastDate,
	}})
}

// HandleGetPerformance returns the ABC/Pareto view. Local figures are
// recomputed against the filtered subset, but each product keeps the ABC
// class pinned against the full dataset at load time.
// GET /api/v1/datasets/:datasetId/performance
func HandleGetPerformance(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}

	performance := analytics.AnalyzeProductPerformance(records)
	for i := range performance {
		if class, ok := ds.ABC[performance[i].Product]; ok {
			performance[i].ABCClass = class
		}
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"products": performance}})
}

// HandleGetSeasonality returns monthly quantity/revenue with top category.
// GET /api/v1/datasets/:datasetId/seasonality
func HandleGetSeasonality(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"months": analytics.AnalyzeSeasonality(records)}})
}

// HandleGetPriceBands returns the five fixed unit-price bands.
// GET /api/v1/datasets/:datasetId/price-bands
func HandleGetPriceBands(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"bands": analytics.AnalyzePriceBands(records)}})
}

// HandleGetBrands returns the brand mix.
// GET /api/v1/datasets/:datasetId/brands
func HandleGetBrands(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"brands": analytics.AnalyzeBrands(records)}})
}

// HandleGetDailyTrend returns revenue and order counts per calendar day.
// GET /api/v1/datasets/:datasetId/daily-trend
func HandleGetDailyTrend(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"days": analytics.AnalyzeDailyTrend(records)}})
}

// HandleGetInventoryMetrics returns safety stock and reorder figures.
// GET /api/v1/datasets/:datasetId/inventory?leadTimeDays=7
func HandleGetInventoryMetrics(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	leadTime, _ := strconv.Atoi(c.Query("leadTimeDays", strconv.Itoa(analytics.DefaultLeadTimeDays)))
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"leadTimeDays": leadTime,
		"products":     analytics.CalculateInventoryMetrics(records, leadTime),
	}})
}

// HandleGetForecast returns the next-month forecast over the monthly series.
// GET /api/v1/datasets/:datasetId/forecast
func HandleGetForecast(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	monthly := analytics.AnalyzeSeasonality(records)
	return c.JSON(fiber.Map{"success": true, "data": analytics.ForecastNextMonth(monthly)})
}

// HandleGetComparison returns the sparse MoM/YoY growth table.
// GET /api/v1/datasets/:datasetId/comparison
func HandleGetComparison(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	monthly := analytics.AnalyzeSeasonality(records)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"months": analytics.CompareMonths(monthly)}})
}

// HandleGetProfit returns per-product margins. An empty product list with
// applicable=false means the dataset carries no cost data at all — that is
// "not applicable", never "zero margin everywhere".
// GET /api/v1/datasets/:datasetId/profit
func HandleGetProfit(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	profits := analytics.AnalyzeProfitMargins(records)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"applicable": len(profits) > 0,
		"products":   profits,
	}})
}

// HandleGetSlowMoving returns products with no recent sales activity.
// GET /api/v1/datasets/:datasetId/slow-moving?thresholdDays=30
func HandleGetSlowMoving(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	threshold, _ := strconv.Atoi(c.Query("thresholdDays", strconv.Itoa(analytics.DefaultSlowMovingThresholdDays)))
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"thresholdDays": threshold,
		"alerts":        analytics.DetectSlowMoving(records, threshold),
	}})
}
