package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"retail-insight/ai"
	"retail-insight/analytics"
	"retail-insight/models"
	"retail-insight/store"
)

var aiService *ai.Service

// UseAI injects the application's AI service handle. It is constructed once
// in main and scoped to the application, not hidden in package init.
func UseAI(s *ai.Service) {
	aiService = s
}

// buildSample runs the engine over the filtered records and reduces the
// output to the bounded payload the AI boundary accepts.
func buildSample(ds *store.Dataset, records []models.SalesRecord) models.AnalysisSample {
	performance := analytics.AnalyzeProductPerformance(records)
	for i := range performance {
		if class, ok := ds.ABC[performance[i].Product]; ok {
			performance[i].ABCClass = class
		}
	}
	return analytics.BuildAnalysisSample(performance, analytics.AnalyzeSeasonality(records))
}

// HandleGenerateDecisions asks the AI for per-product stocking decisions and
// a narrative summary. An AI failure is surfaced as its own error; the local
// metric endpoints are untouched by it, so the dashboard keeps its analytics.
// POST /api/v1/datasets/:datasetId/decisions
func HandleGenerateDecisions(c *fiber.Ctx) error {
	if aiService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "AI service is not configured"})
	}

	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}
	if len(records) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No records match the current filter"})
	}

	report, err := aiService.GenerateDecisions(context.Background(), buildSample(ds, records))
	if err != nil {
		log.Printf("AI decision generation failed for dataset %s: %v", ds.ID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "AI analysis failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": report})
}

// HandleChat answers a follow-up question against the dataset's statistics.
// POST /api/v1/datasets/:datasetId/chat
func HandleChat(c *fiber.Ctx) error {
	if aiService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "AI service is not configured"})
	}

	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "A question is required"})
	}

	ds, records, err := filteredRecords(c)
	if ds == nil {
		return err
	}

	answer, err := aiService.Chat(context.Background(), buildSample(ds, records), req.Question)
	if err != nil {
		log.Printf("AI chat failed for dataset %s: %v", ds.ID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "AI analysis failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"answer": answer}})
}
