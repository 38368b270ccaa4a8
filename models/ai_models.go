package models

// Decision tags the AI may assign to a product.
const (
	DecisionMainStock   = "main-stock"
	DecisionDisplayOnly = "display-only"
	DecisionStopOrder   = "stop-order"
	DecisionWatchList   = "watch-list"
)

// Lifecycle stages the AI may assign to a product.
const (
	StageNew     = "new"
	StageGrowth  = "growth"
	StageMature  = "mature"
	StageDecline = "decline"
)

// AnalysisSample is the bounded slice of aggregation output sent to the AI:
// capped top/mid/bottom performance rows plus up to a year of seasonality.
type AnalysisSample struct {
	TopProducts    []ProductPerformance `json:"topProducts"`
	MidProducts    []ProductPerformance `json:"midProducts,omitempty"`
	BottomProducts []ProductPerformance `json:"bottomProducts,omitempty"`
	Monthly        []MonthlySales       `json:"monthly,omitempty"`
	TotalRevenue   float64              `json:"totalRevenue"`
	ProductCount   int                  `json:"productCount"`
}

// StockingDecision is one per-product decision returned by the AI.
type StockingDecision struct {
	Product  string `json:"product"`
	Decision string `json:"decision"`
	Stage    string `json:"stage"`
	Reason   string `json:"reason"`
	Action   string `json:"action"`
}

// DecisionReport is the full AI response: per-product decisions plus a
// narrative summary of the dataset.
type DecisionReport struct {
	Decisions []StockingDecision `json:"decisions"`
	Summary   string             `json:"summary"`
}

// ChatRequest is the body of a conversational follow-up question.
type ChatRequest struct {
	Question string `json:"question"`
}
