package domain

import "time"

// MarketCategory identifies a market data snapshot. Unlike the other
// collections, market data is keyed by category, not by an integer id.
type MarketCategory string

const (
	MarketRealEstate  MarketCategory = "real_estate"
	MarketCommodities MarketCategory = "commodities"
	MarketArt         MarketCategory = "art"
	MarketBonds       MarketCategory = "bonds"
)

// Valid reports whether the category is one of the known variants.
func (c MarketCategory) Valid() bool {
	switch c {
	case MarketRealEstate, MarketCommodities, MarketArt, MarketBonds:
		return true
	}
	return false
}

// MarketData is a per-category valuation snapshot. There is at most one live
// record per category; updates overwrite the record wholesale. ID is always 0
// since the category string is the identity.
type MarketData struct {
	ID            int            `json:"id"`
	Category      MarketCategory `json:"category"`
	TotalValue    string         `json:"totalValue"`
	ChangePercent string         `json:"changePercent"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
