package models

// Markers used when a source row is missing a field. The normalizer never
// fails a row; it degrades to these defaults instead.
const (
	DateUnknown           = "Unknown"
	CategoryUncategorized = "Uncategorized"
	ProductUnknown        = "Unknown Product"
	BrandOther            = "Other"
)

// SalesRecord is the canonical, immutable shape every aggregation consumes.
// Date is a YYYY-MM-DD string (or DateUnknown / the raw value when it could
// not be parsed). Cost is nil when the source carried no cost column; a nil
// cost disables margin analysis for the dataset.
type SalesRecord struct {
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Product  string   `json:"product"`
	Quantity float64  `json:"quantity"`
	Amount   float64  `json:"amount"`
	Cost     *float64 `json:"cost,omitempty"`
	Brand    string   `json:"brand"`
	IsGift   bool     `json:"isGift,omitempty"`
}
