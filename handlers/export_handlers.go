package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"retail-insight/analytics"
	"retail-insight/models"
	"retail-insight/utils"
)

// ExportInput optionally carries AI decisions the client already fetched, so
// the export can merge them into the metric table.
type ExportInput struct {
	Decisions []models.StockingDecision `json:"decisions"`
}

// HandleExportCSV renders the combined decision+metric table as a UTF-8 CSV
// with a leading byte-order mark for spreadsheet compatibility.
// POST /api/v1/datasets/:datasetId/export
func HandleExportCSV(c *fiber.Ctx) error {
	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}

	var input ExportInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
		}
	}
	decisions := make(map[string]models.StockingDecision, len(input.Decisions))
	for _, d := range input.Decisions {
		decisions[d.Product] = d
	}

	performance := analytics.AnalyzeProductPerformance(records)
	for i := range performance {
		if class, ok := ds.ABC[performance[i].Product]; ok {
			performance[i].ABCClass = class
		}
	}

	inventory := make(map[string]models.InventoryMetric)
	for _, m := range analytics.CalculateInventoryMetrics(records, analytics.DefaultLeadTimeDays) {
		inventory[m.Product] = m
	}
	risks := make(map[string]models.SlowMovingAlert)
	for _, a := range analytics.DetectSlowMoving(records, analytics.DefaultSlowMovingThresholdDays) {
		risks[a.Product] = a
	}
	margins := make(map[string]models.ProductProfit)
	for _, p := range analytics.AnalyzeProfitMargins(records) {
		margins[p.Product] = p
	}

	headers := []string{
		"Product", "ABC Class", "Total Quantity", "Total Amount", "Average Price",
		"Amount Share %", "Sales Frequency", "Velocity", "Avg Daily Sales",
		"Reorder Point", "Suggested Order Qty", "Margin %", "Risk", "Decision", "Stage", "Reason", "Action",
	}

	rows := make([][]string, 0, len(performance))
	for _, p := range performance {
		inv := inventory[p.Product]
		row := []string{
			p.Product,
			p.ABCClass,
			formatFloat(p.TotalQuantity),
			formatFloat(p.TotalAmount),
			formatFloat(p.AveragePrice),
			strconv.FormatFloat(p.AmountShare, 'f', 2, 64),
			strconv.Itoa(p.SalesFrequency),
			formatFloat(p.VelocityScore),
			strconv.FormatFloat(inv.AvgDailySales, 'f', 2, 64),
			strconv.Itoa(inv.ReorderPoint),
			strconv.Itoa(inv.SuggestedOrderQty),
		}
		if m, ok := margins[p.Product]; ok {
			row = append(row, strconv.FormatFloat(m.MarginPercent, 'f', 1, 64))
		} else {
			row = append(row, "")
		}
		if r, ok := risks[p.Product]; ok {
			row = append(row, r.RiskLevel)
		} else {
			row = append(row, "")
		}
		d := decisions[p.Product]
		row = append(row, d.Decision, d.Stage, d.Reason, d.Action)
		rows = append(rows, row)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s-analysis.csv"`, ds.ID))
	return c.Send(utils.BuildCSV(headers, rows))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
