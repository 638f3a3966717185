package memory

import (
	"time"

	"github.com/rwalabs/bridgemaker/pkg/domain"
)

// seed loads the demo dataset. Entries go straight into the maps so the
// seeded assets and bridges do not generate activity entries; the three
// seeded activities are part of the dataset itself. Counters end up past the
// highest used id.
func (l *Ledger) seed() {
	now := time.Now().UTC()

	for _, a := range []*domain.Asset{
		{
			Name:        "NYC Apartment",
			Type:        domain.AssetTypeRealEstate,
			Description: "Luxury apartment in Manhattan",
			Value:       "125000.00",
			TokenSymbol: "NYCA",
			TotalSupply: "1000000",
			Decimals:    18,
			Owner:       "user1",
			Status:      domain.AssetStatusActive,
		},
		{
			Name:        "Gold Reserve",
			Type:        domain.AssetTypeCommodities,
			Description: "Physical gold reserves",
			Value:       "85000.00",
			TokenSymbol: "GOLD",
			TotalSupply: "500000",
			Decimals:    18,
			Owner:       "user1",
			Status:      domain.AssetStatusActive,
		},
		{
			Name:        "Art Collection",
			Type:        domain.AssetTypeArt,
			Description: "Contemporary art pieces",
			Value:       "45000.00",
			TokenSymbol: "ART",
			TotalSupply: "100000",
			Decimals:    18,
			Owner:       "user1",
			Status:      domain.AssetStatusActive,
		},
	} {
		a.ID = l.nextAssetID
		a.CreatedAt = now
		l.nextAssetID++
		l.assets[a.ID] = a
	}

	for _, b := range []*domain.Bridge{
		{
			Name:        "ETH-VARA Bridge",
			SourceChain: "Ethereum",
			TargetChain: "Vara Network",
			BridgeType:  domain.BridgeTypeFast,
			Status:      domain.BridgeStatusActive,
			Owner:       "user1",
		},
		{
			Name:        "POLY-VARA Bridge",
			SourceChain: "Polygon",
			TargetChain: "Vara Network",
			BridgeType:  domain.BridgeTypeSecure,
			Status:      domain.BridgeStatusDeploying,
			Owner:       "user1",
		},
		{
			Name:        "BSC-VARA Bridge",
			SourceChain: "Binance Smart Chain",
			TargetChain: "Vara Network",
			BridgeType:  domain.BridgeTypeEconomic,
			Status:      domain.BridgeStatusConfigured,
			Owner:       "user1",
		},
	} {
		b.ID = l.nextBridgeID
		b.DeploymentFee = domain.BridgeDeploymentFee
		b.CreatedAt = now
		l.nextBridgeID++
		l.bridges[b.ID] = b
	}

	for _, a := range []*domain.Activity{
		{
			Type:        domain.ActivityAssetCreated,
			Description: "Asset tokenized",
			Amount:      "+$15,000",
			Owner:       "user1",
		},
		{
			Type:        domain.ActivityBridgeDeployed,
			Description: "Bridge deployed",
			Amount:      "-$50",
			Owner:       "user1",
		},
		{
			Type:        domain.ActivityTokenMinted,
			Description: "Token minted",
			Amount:      "1,000 RWA",
			Owner:       "user1",
		},
	} {
		a.ID = l.nextActivityID
		a.CreatedAt = now
		l.nextActivityID++
		l.activities[a.ID] = a
	}

	for _, m := range []*domain.MarketData{
		{Category: domain.MarketRealEstate, TotalValue: "1200000.00", ChangePercent: "8.5"},
		{Category: domain.MarketCommodities, TotalValue: "850000.00", ChangePercent: "-2.3"},
		{Category: domain.MarketArt, TotalValue: "320000.00", ChangePercent: "15.2"},
		{Category: domain.MarketBonds, TotalValue: "125000.00", ChangePercent: "3.1"},
	} {
		m.UpdatedAt = now
		l.marketData[m.Category] = m
	}
}
