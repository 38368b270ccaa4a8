package handlers

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"retail-insight/database"
	"retail-insight/store"
	"retail-insight/utils"
)

// HandleListDatasets lists the session's datasets, newest first.
// GET /api/v1/datasets
func HandleListDatasets(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))

	all := store.Datasets.List()
	pagination := utils.CreatePagination(len(all), page, pageSize)

	start := (pagination.CurrentPage - 1) * pagination.PageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pagination.PageSize
	if end > len(all) {
		end = len(all)
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"datasets":   all[start:end],
		"pagination": pagination,
	}})
}

// HandleGetDataset returns a dataset's metadata.
// GET /api/v1/datasets/:datasetId
func HandleGetDataset(c *fiber.Ctx) error {
	ds, ok := store.Datasets.Get(c.Params("datasetId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Dataset not found"})
	}
	return c.JSON(fiber.Map{"success": true, "data": ds})
}

// HandleDeleteDataset removes a dataset from the session and, when
// persistence is configured, from PostgreSQL.
// DELETE /api/v1/datasets/:datasetId
func HandleDeleteDataset(c *fiber.Ctx) error {
	id := c.Params("datasetId")
	if !store.Datasets.Delete(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Dataset not found"})
	}

	if db := database.GetDB(); db != nil {
		if _, err := db.Exec(context.Background(), "DELETE FROM datasets WHERE id = $1", id); err != nil {
			log.Printf("Error deleting persisted dataset %s: %v", id, err)
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Dataset deleted"})
}

// RestoreDatasets reloads persisted datasets into the in-memory registry at
// startup so a restart does not lose the session's uploads.
func RestoreDatasets(ctx context.Context) error {
	db := database.GetDB()
	if db == nil {
		return nil
	}

	rows, err := db.Query(ctx, "SELECT id, name, record_count, records, abc_classes, created_at FROM datasets ORDER BY created_at")
	if err != nil {
		return err
	}
	defer rows.Close()

	restored := 0
	for rows.Next() {
		var ds store.Dataset
		var records, classes []byte
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.RecordCount, &records, &classes, &ds.CreatedAt); err != nil {
			log.Printf("Error scanning persisted dataset: %v", err)
			continue
		}
		if err := json.Unmarshal(records, &ds.Records); err != nil {
			log.Printf("Error decoding records for dataset %s: %v", ds.ID, err)
			continue
		}
		if err := json.Unmarshal(classes, &ds.ABC); err != nil {
			ds.ABC = map[string]string{}
		}
		for _, rec := range ds.Records {
			if rec.IsGift {
				ds.GiftCount++
			}
		}
		store.Datasets.Restore(&ds)
		restored++
	}
	if restored > 0 {
		log.Printf("Restored %d persisted datasets", restored)
	}
	return rows.Err()
}
