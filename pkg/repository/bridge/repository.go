// Package bridge defines the data access interface for cross-chain bridges.
package bridge

import (
	"context"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
)

// Repository defines the interface for bridge data access operations.
type Repository interface {
	// Create inserts a new bridge from a DTO, assigns its id and creation
	// time, forces the platform deployment fee, and records the matching
	// bridge_deployed activity.
	Create(ctx context.Context, create *dto.BridgeCreate) (*domain.Bridge, error)

	// Get retrieves a bridge by its id.
	Get(ctx context.Context, id int) (*domain.Bridge, error)

	// List retrieves all bridges.
	List(ctx context.Context) ([]*domain.Bridge, error)

	// ListByOwner retrieves all bridges belonging to an owner.
	ListByOwner(ctx context.Context, owner string) ([]*domain.Bridge, error)

	// Update applies a shallow merge of the present fields onto an existing
	// bridge. Id, creation time and deployment fee are never touched.
	Update(ctx context.Context, id int, update *dto.BridgeUpdate) (*domain.Bridge, error)
}
