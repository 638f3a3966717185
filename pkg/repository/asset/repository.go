// Package asset defines the data access interface for tokenized assets.
package asset

import (
	"context"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
)

// Repository defines the interface for asset data access operations.
type Repository interface {
	// Create inserts a new asset from a DTO, assigns its id and creation
	// time, and records the matching asset_created activity.
	Create(ctx context.Context, create *dto.AssetCreate) (*domain.Asset, error)

	// Get retrieves an asset by its id.
	Get(ctx context.Context, id int) (*domain.Asset, error)

	// List retrieves all assets.
	List(ctx context.Context) ([]*domain.Asset, error)

	// ListByOwner retrieves all assets belonging to an owner.
	ListByOwner(ctx context.Context, owner string) ([]*domain.Asset, error)

	// Update applies a shallow merge of the present fields onto an existing
	// asset. Id and creation time are never touched.
	Update(ctx context.Context, id int, update *dto.AssetUpdate) (*domain.Asset, error)
}
