package models

// ABC classes assigned by cumulative revenue share.
const (
	ABCClassA = "A"
	ABCClassB = "B"
	ABCClassC = "C"
)

// Trend directions and confidence levels for the sales forecast.
const (
	TrendUp     = "UP"
	TrendDown   = "DOWN"
	TrendStable = "STABLE"

	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// Risk tiers for slow-moving stock.
const (
	RiskHigh   = "HIGH"
	RiskMedium = "MEDIUM"
	RiskLow    = "LOW"
)

// ProductPerformance holds the per-product aggregates behind the ABC/Pareto
// view. AmountShare and CumulativeShare are percentages of the input set's
// total revenue; ABCClass follows the 80/95 cumulative thresholds.
type ProductPerformance struct {
	Product         string  `json:"product"`
	TotalQuantity   float64 `json:"totalQuantity"`
	TotalAmount     float64 `json:"totalAmount"`
	AveragePrice    float64 `json:"averagePrice"`
	AmountShare     float64 `json:"amountShare"`
	CumulativeShare float64 `json:"cumulativeShare"`
	ABCClass        string  `json:"abcClass"`
	SalesFrequency  int     `json:"salesFrequency"`
	VelocityScore   float64 `json:"velocityScore"`
}

// MonthlySales is one row of the seasonality view, keyed by YYYY-MM.
type MonthlySales struct {
	Month         string  `json:"month"`
	TotalQuantity float64 `json:"totalQuantity"`
	TotalAmount   float64 `json:"totalAmount"`
	TopCategory   string  `json:"topCategory"`
}

// PriceBand aggregates sales into one of the five fixed unit-price ranges.
type PriceBand struct {
	Label      string  `json:"label"`
	SalesCount int     `json:"salesCount"`
	Revenue    float64 `json:"revenue"`
	Percent    float64 `json:"percent"`
}

// BrandMetric is one row of the brand mix view.
type BrandMetric struct {
	Brand    string  `json:"brand"`
	Revenue  float64 `json:"revenue"`
	Quantity float64 `json:"quantity"`
	Percent  float64 `json:"percent"`
}

// DailyTrendPoint sums revenue per calendar day. Orders counts records, one
// record per order; the schema carries no true order identifiers.
type DailyTrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// InventoryMetric carries the reorder figures for one product. SafetyStock,
// ReorderPoint and SuggestedOrderQty are ceil'd integers; AvgDailySales and
// StdDev are rounded to 2 decimal places for display.
type InventoryMetric struct {
	Product           string  `json:"product"`
	TotalQuantity     float64 `json:"totalQuantity"`
	AvgDailySales     float64 `json:"avgDailySales"`
	StdDev            float64 `json:"stdDev"`
	SafetyStock       int     `json:"safetyStock"`
	ReorderPoint      int     `json:"reorderPoint"`
	SuggestedOrderQty int     `json:"suggestedOrderQty"`
}

// SalesForecast is the single-result output of the forecast engine. A dataset
// with no monthly history yields the zero value with Confidence LOW.
type SalesForecast struct {
	ForecastRevenue  float64 `json:"forecastRevenue"`
	ForecastQuantity float64 `json:"forecastQuantity"`
	TrendPercent     float64 `json:"trendPercent"`
	Trend            string  `json:"trend"`
	Confidence       string  `json:"confidence"`
	MonthsOfHistory  int     `json:"monthsOfHistory"`
}

// MonthlyComparison is one row of the YoY/MoM view. Growth fields are
// pointers: nil means "not applicable" (no prior period, or prior revenue
// was zero), which callers must not read as 0%.
type MonthlyComparison struct {
	Month     string   `json:"month"`
	Revenue   float64  `json:"revenue"`
	Quantity  float64  `json:"quantity"`
	MoMGrowth *float64 `json:"momGrowth,omitempty"`
	YoYGrowth *float64 `json:"yoyGrowth,omitempty"`
}

// ProductProfit is one row of the margin view, present only when the dataset
// carries cost data.
type ProductProfit struct {
	Product       string  `json:"product"`
	Revenue       float64 `json:"revenue"`
	Cost          float64 `json:"cost"`
	GrossProfit   float64 `json:"grossProfit"`
	MarginPercent float64 `json:"marginPercent"`
}

// SlowMovingAlert flags a product whose last sale is at least the threshold
// number of days before the dataset's last observed date.
type SlowMovingAlert struct {
	Product           string  `json:"product"`
	LastSaleDate      string  `json:"lastSaleDate"`
	DaysSinceLastSale int     `json:"daysSinceLastSale"`
	TotalQuantity     float64 `json:"totalQuantity"`
	RiskLevel         string  `json:"riskLevel"`
	Recommendation    string  `json:"recommendation"`
}
