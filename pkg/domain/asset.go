// Package domain holds the entities managed by the ledger store: tokenized
// real-world assets, cross-chain bridges, the activity log, per-category
// market snapshots and users. All monetary fields are decimal strings so the
// JSON representation round-trips exactly.
package domain

import "time"

// AssetType classifies the real-world asset backing a token.
type AssetType string

const (
	AssetTypeRealEstate  AssetType = "real_estate"
	AssetTypeCommodities AssetType = "commodities"
	AssetTypeArt         AssetType = "art"
	AssetTypeBonds       AssetType = "bonds"
	AssetTypeOther       AssetType = "other"
)

// Valid reports whether the asset type is one of the known variants.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeRealEstate, AssetTypeCommodities, AssetTypeArt,
		AssetTypeBonds, AssetTypeOther:
		return true
	}
	return false
}

// AssetStatus is the tokenization lifecycle state of an asset.
type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "active"
	AssetStatusPending  AssetStatus = "pending"
	AssetStatusDeployed AssetStatus = "deployed"
)

// Valid reports whether the asset status is one of the known variants.
func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusActive, AssetStatusPending, AssetStatusDeployed:
		return true
	}
	return false
}

// Asset represents a tokenized real-world asset.
type Asset struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Type        AssetType   `json:"type"`
	Description string      `json:"description,omitempty"`
	Value       string      `json:"value"`
	TokenSymbol string      `json:"tokenSymbol"`
	TotalSupply string      `json:"totalSupply"`
	Decimals    int         `json:"decimals"`
	Owner       string      `json:"owner"`
	Status      AssetStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}
