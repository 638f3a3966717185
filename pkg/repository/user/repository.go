// Package user defines the data access interface for users.
package user

import (
	"context"

	"github.com/rwalabs/bridgemaker/pkg/domain"
)

// Repository defines the interface for user data access operations. The
// password arriving here is already hashed; the repository stores it opaquely.
type Repository interface {
	// Create inserts a new user and assigns its id.
	Create(ctx context.Context, username, password string) (*domain.User, error)

	// Get retrieves a user by its id.
	Get(ctx context.Context, id int) (*domain.User, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
