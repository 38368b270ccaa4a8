package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"retail-insight/models"
)

// NormalizeOptions are the per-upload feature flags of the normalizer.
// Dedupe drops exact repeats across a merged batch (first occurrence wins);
// DetectGifts flags zero-amount rows and rows whose product name contains a
// complimentary-item keyword instead of treating them as plain sales.
type NormalizeOptions struct {
	Dedupe      bool
	DetectGifts bool
}

// Ordered substring lists used to infer which source column feeds each
// canonical field. First match wins.
var (
	dateKeys     = []string{"date", "日期", "時間", "month", "day"}
	productKeys  = []string{"product", "name", "model", "商品", "型號", "名稱", "品名"}
	categoryKeys = []string{"category", "類別", "分類", "種類", "type"}
	quantityKeys = []string{"quantity", "qty", "數量", "件數"}
	amountKeys   = []string{"amount", "total", "revenue", "金額", "售價", "營業額", "price"}
	costKeys     = []string{"cost", "成本", "進價"}
)

// Product names containing any of these are treated as complimentary items
// when DetectGifts is on.
var giftKeywords = []string{"贈品", "贈送", "gift", "free"}

// Days between the spreadsheet 1900-system epoch and the Unix epoch.
const serialDateEpochOffset = 25569

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-1-2",
	"2006/1/2",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Normalize maps raw rows of unknown shape into canonical sales records.
// Malformed fields degrade to defaults; the only filter is that a record must
// have positive quantity or positive amount to survive. The caller decides
// whether an empty result is an error.
func Normalize(rows []map[string]interface{}, opts NormalizeOptions) []models.SalesRecord {
	records := make([]models.SalesRecord, 0, len(rows))
	seen := make(map[string]bool)

	for _, row := range rows {
		date := normalizeDate(findField(row, dateKeys))
		product := coerceString(findField(row, productKeys), models.ProductUnknown)
		category := coerceString(findField(row, categoryKeys), models.CategoryUncategorized)
		quantity, _ := coerceFloat(findField(row, quantityKeys))
		amount, _ := coerceFloat(findField(row, amountKeys))

		var cost *float64
		if v, ok := coerceFloat(findField(row, costKeys)); ok {
			cost = &v
		}

		// Zero/zero rows are noise, not sales.
		if quantity <= 0 && amount <= 0 {
			continue
		}

		rec := models.SalesRecord{
			Date:     date,
			Category: category,
			Product:  product,
			Quantity: quantity,
			Amount:   amount,
			Cost:     cost,
			Brand:    DetectBrand(product),
		}

		if opts.DetectGifts {
			rec.IsGift = amount == 0 || containsAny(strings.ToLower(product), giftKeywords)
		}

		if opts.Dedupe {
			key := fmt.Sprintf("%s|%s|%v|%v", rec.Date, rec.Product, rec.Quantity, rec.Amount)
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		records = append(records, rec)
	}
	return records
}

// findField returns the value of the first row key whose lowercased name
// contains one of the recognized substrings. Substrings are checked in
// priority order; within one substring, keys are scanned in sorted order
// because Go map iteration is not deterministic.
func findField(row map[string]interface{}, recognized []string) interface{} {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, sub := range recognized {
		for _, k := range keys {
			if strings.Contains(strings.ToLower(k), sub) {
				return row[k]
			}
		}
	}
	return nil
}

func coerceString(v interface{}, def string) string {
	if v == nil {
		return def
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return def
	}
	return s
}

// coerceFloat converts a raw cell value to a number. The bool reports whether
// the cell held a usable numeric value at all.
func coerceFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		f, err := strconv.ParseFloat(fmt.Sprint(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}

// normalizeDate renders the raw cell as YYYY-MM-DD. Numeric values are
// interpreted as 1900-system spreadsheet serial dates. Unparseable strings
// pass through verbatim; an absent value yields models.DateUnknown.
func normalizeDate(v interface{}) string {
	if v == nil {
		return models.DateUnknown
	}

	if serial, ok := numericValue(v); ok {
		unix := int64((serial - serialDateEpochOffset) * 86400)
		return time.Unix(unix, 0).UTC().Format("2006-01-02")
	}

	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return models.DateUnknown
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// numericValue reports whether the raw cell is a number (not a numeric-looking
// string; those are parsed as calendar dates instead).
func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
