// Package market defines the data access interface for market snapshots.
package market

import (
	"context"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
)

// Repository defines the interface for per-category market data.
type Repository interface {
	// List retrieves the snapshots of all categories.
	List(ctx context.Context) ([]*domain.MarketData, error)

	// GetByCategory retrieves the snapshot for a single category.
	GetByCategory(ctx context.Context, category domain.MarketCategory) (*domain.MarketData, error)

	// Replace overwrites a category's snapshot wholesale and stamps the
	// update time.
	Replace(ctx context.Context, category domain.MarketCategory, replace *dto.MarketDataReplace) (*domain.MarketData, error)
}
