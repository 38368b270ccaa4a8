package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"retail-insight/analytics"
	"retail-insight/database"
	"retail-insight/store"
)

// CreateDatasetInput is the JSON body of POST /datasets when rows arrive
// pre-parsed (the client already ran the spreadsheet through a parser).
type CreateDatasetInput struct {
	Name        string                   `json:"name"`
	Rows        []map[string]interface{} `json:"rows"`
	Dedupe      bool                     `json:"dedupe"`
	DetectGifts bool                     `json:"detectGifts"`
}

// HandleCreateDataset ingests raw sales rows, normalizes them into the
// canonical record set and registers the dataset for the session. Rows come
// either as a JSON body or as a multipart CSV/XLSX file. Malformed rows
// degrade to defaults; producing zero usable rows is the one hard failure.
// POST /api/v1/datasets
func HandleCreateDataset(c *fiber.Ctx) error {
	var name string
	var rows []map[string]interface{}
	opts := analytics.NormalizeOptions{}

	if file, err := c.FormFile("file"); err == nil {
		name = file.Filename
		opts.Dedupe = c.FormValue("dedupe") == "true"
		opts.DetectGifts = c.FormValue("detectGifts") == "true"

		rows, err = rowsFromUpload(file)
		if err != nil {
			log.Printf("Error parsing uploaded file %s: %v", file.Filename, err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Could not read the uploaded file"})
		}
	} else {
		var input CreateDatasetInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
		}
		name = input.Name
		rows = input.Rows
		opts.Dedupe = input.Dedupe
		opts.DetectGifts = input.DetectGifts
	}
	if name == "" {
		name = "Untitled dataset"
	}

	records := analytics.Normalize(rows, opts)
	if len(records) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No valid data could be parsed; check that the file has date, product, quantity and amount columns",
		})
	}

	// ABC classes are pinned against the full dataset here; filtered views
	// recompute local figures but keep these classes.
	abc := analytics.ABCClassMap(analytics.AnalyzeProductPerformance(records))

	ds := store.Datasets.Add(name, records, abc)
	persistDataset(ds)

	log.Printf("Dataset %s created: %d records from %d raw rows", ds.ID, len(records), len(rows))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": ds})
}

// rowsFromUpload converts a CSV or XLSX upload into raw associative rows.
// Cell values stay strings; the normalizer owns all coercion.
func rowsFromUpload(file *multipart.FileHeader) ([]map[string]interface{}, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".xlsx", ".xlsm":
		return rowsFromXLSX(f)
	default:
		return rowsFromCSV(f)
	}
}

func rowsFromCSV(r io.Reader) ([]map[string]interface{}, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	// Strip a UTF-8 BOM exported by spreadsheet apps.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var rows []map[string]interface{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowFromCells(header, record))
	}
	return rows, nil
}

func rowsFromXLSX(r io.Reader) ([]map[string]interface{}, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	cells, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	var rows []map[string]interface{}
	for _, record := range cells[1:] {
		rows = append(rows, rowFromCells(header, record))
	}
	return rows, nil
}

func rowFromCells(header, cells []string) map[string]interface{} {
	row := make(map[string]interface{}, len(header))
	for i, key := range header {
		if key == "" {
			continue
		}
		if i < len(cells) {
			row[key] = cells[i]
		}
	}
	return row
}

// persistDataset writes the dataset to PostgreSQL when persistence is
// configured. Failure is logged, not surfaced; the in-memory registry is the
// authoritative copy for the session.
func persistDataset(ds *store.Dataset) {
	db := database.GetDB()
	if db == nil {
		return
	}

	records, err := json.Marshal(ds.Records)
	if err != nil {
		log.Printf("Error serializing dataset %s for persistence: %v", ds.ID, err)
		return
	}
	classes, err := json.Marshal(ds.ABC)
	if err != nil {
		log.Printf("Error serializing ABC classes for dataset %s: %v", ds.ID, err)
		return
	}

	query := `
		INSERT INTO datasets (id, name, record_count, records, abc_classes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := db.Exec(context.Background(), query, ds.ID, ds.Name, ds.RecordCount, records, classes, ds.CreatedAt); err != nil {
		log.Printf("Error persisting dataset %s: %v", ds.ID, err)
	}
}
