// Package activity defines the data access interface for the activity log.
package activity

import (
	"context"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
)

// Repository defines the interface for the append-only activity log.
type Repository interface {
	// Create appends a new activity entry and assigns its id and creation
	// time.
	Create(ctx context.Context, create *dto.ActivityCreate) (*domain.Activity, error)

	// List retrieves all activities, newest first.
	List(ctx context.Context) ([]*domain.Activity, error)

	// ListByOwner retrieves an owner's activities, newest first.
	ListByOwner(ctx context.Context, owner string) ([]*domain.Activity, error)
}
