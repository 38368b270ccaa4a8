package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insight/analytics"
	"retail-insight/models"
	"retail-insight/store"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/datasets", HandleCreateDataset)
	app.Get("/api/v1/datasets/:datasetId/summary", HandleGetSummary)
	app.Get("/api/v1/datasets/:datasetId/performance", HandleGetPerformance)
	app.Get("/api/v1/datasets/:datasetId/profit", HandleGetProfit)
	app.Post("/api/v1/datasets/:datasetId/export", HandleExportCSV)
	return app
}

func seedDataset(t *testing.T) *store.Dataset {
	t.Helper()
	records := analytics.Normalize([]map[string]interface{}{
		{"date": "2024-01-05", "category": "Fridge", "product": "LG Fridge X", "quantity": 2, "amount": 40000},
		{"date": "2024-01-06", "category": "Fridge", "product": "LG Fridge X", "quantity": 1, "amount": 20000},
		{"date": "2024-02-01", "category": "TV", "product": "Samsung TV Q80", "quantity": 1, "amount": 30000},
	}, analytics.NormalizeOptions{})
	require.Len(t, records, 3)

	abc := analytics.ABCClassMap(analytics.AnalyzeProductPerformance(records))
	ds := store.Datasets.Add("test", records, abc)
	t.Cleanup(func() { store.Datasets.Delete(ds.ID) })
	return ds
}

func TestHandleCreateDatasetFromJSON(t *testing.T) {
	app := testApp()

	body, _ := json.Marshal(CreateDatasetInput{
		Name: "january.xlsx",
		Rows: []map[string]interface{}{
			{"日期": "2024-01-05", "品名": "LG Fridge X", "數量": 2, "金額": 40000},
		},
	})
	req := httptest.NewRequest("POST", "/api/v1/datasets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out struct {
		Success bool          `json:"success"`
		Data    store.Dataset `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, 1, out.Data.RecordCount)
	store.Datasets.Delete(out.Data.ID)
}

func TestHandleCreateDatasetRejectsUnusableRows(t *testing.T) {
	app := testApp()

	body, _ := json.Marshal(CreateDatasetInput{
		Rows: []map[string]interface{}{
			{"note": "not a sales row"},
			{"quantity": 0, "amount": 0},
		},
	})
	req := httptest.NewRequest("POST", "/api/v1/datasets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleGetPerformance(t *testing.T) {
	app := testApp()
	ds := seedDataset(t)

	req := httptest.NewRequest("GET", "/api/v1/datasets/"+ds.ID+"/performance", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out struct {
		Data struct {
			Products []models.ProductPerformance `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Data.Products, 2)
	assert.Equal(t, "LG Fridge X", out.Data.Products[0].Product)
	assert.Equal(t, 60000.0, out.Data.Products[0].TotalAmount)
}

func TestHandleGetPerformanceKeepsGlobalABCUnderFilter(t *testing.T) {
	app := testApp()
	ds := seedDataset(t)

	// Against the full dataset Samsung TV Q80 trails LG and lands outside
	// the 80% cumulative band. A filter down to just that product keeps its
	// global class instead of reclassifying it A.
	globalClass := ds.ABC["Samsung TV Q80"]
	require.NotEqual(t, models.ABCClassA, globalClass)

	req := httptest.NewRequest("GET", "/api/v1/datasets/"+ds.ID+"/performance?product=Samsung+TV+Q80", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out struct {
		Data struct {
			Products []models.ProductPerformance `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Data.Products, 1)
	assert.Equal(t, globalClass, out.Data.Products[0].ABCClass)
	// Local figures are recomputed against the subset.
	assert.Equal(t, 100.0, out.Data.Products[0].AmountShare)
}

func TestHandleGetSummaryNotFound(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/api/v1/datasets/missing/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleGetProfitNotApplicable(t *testing.T) {
	app := testApp()
	ds := seedDataset(t)

	req := httptest.NewRequest("GET", "/api/v1/datasets/"+ds.ID+"/profit", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out struct {
		Data struct {
			Applicable bool                   `json:"applicable"`
			Products   []models.ProductProfit `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Data.Applicable)
	assert.Empty(t, out.Data.Products)
}

func TestHandleExportCSV(t *testing.T) {
	app := testApp()
	ds := seedDataset(t)

	body := []byte(`{"decisions":[{"product":"LG Fridge X","decision":"main-stock","stage":"mature","reason":"core seller","action":"keep stocked"}]}`)
	req := httptest.NewRequest("POST", "/api/v1/datasets/"+ds.ID+"/export", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(out), `"LG Fridge X"`)
	assert.Contains(t, string(out), `"main-stock"`)
}
