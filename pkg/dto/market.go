package dto

// MarketDataReplace represents a wholesale replacement of a category's market
// snapshot. The category itself comes from the request path.
type MarketDataReplace struct {
	TotalValue    string `json:"totalValue" validate:"required,decimal"`
	ChangePercent string `json:"changePercent" validate:"required,decimal"`
}
