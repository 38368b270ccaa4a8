package routes

import (
	"github.com/gofiber/fiber/v2"

	"retail-insight/handlers"
	"retail-insight/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)
	auth.Post("/users", middleware.Authenticate, middleware.CheckRole("admin"), handlers.HandleCreateUser)

	// --- Dataset Routes ---
	datasets := api.Group("/datasets", middleware.Authenticate)
	datasets.Post("/", handlers.HandleCreateDataset)
	datasets.Get("/", handlers.HandleListDatasets)
	datasets.Get("/:datasetId", handlers.HandleGetDataset)
	datasets.Delete("/:datasetId", handlers.HandleDeleteDataset)

	// Analytics views. Each accepts category/brand/product/startDate/endDate
	// query filters and recomputes from the canonical record set.
	datasets.Get("/:datasetId/summary", handlers.HandleGetSummary)
	datasets.Get("/:datasetId/performance", handlers.HandleGetPerformance)
	datasets.Get("/:datasetId/seasonality", handlers.HandleGetSeasonality)
	datasets.Get("/:datasetId/price-bands", handlers.HandleGetPriceBands)
	datasets.Get("/:datasetId/brands", handlers.HandleGetBrands)
	datasets.Get("/:datasetId/daily-trend", handlers.HandleGetDailyTrend)
	datasets.Get("/:datasetId/inventory", handlers.HandleGetInventoryMetrics)
	datasets.Get("/:datasetId/forecast", handlers.HandleGetForecast)
	datasets.Get("/:datasetId/comparison", handlers.HandleGetComparison)
	datasets.Get("/:datasetId/profit", handlers.HandleGetProfit)
	datasets.Get("/:datasetId/slow-moving", handlers.HandleGetSlowMoving)

	// AI boundary and export.
	datasets.Post("/:datasetId/decisions", handlers.HandleGenerateDecisions)
	datasets.Post("/:datasetId/chat", handlers.HandleChat)
	datasets.Post("/:datasetId/export", handlers.HandleExportCSV)
}
