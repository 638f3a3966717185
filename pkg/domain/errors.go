package domain

import "errors"

var (
	// ErrAssetNotFound is returned when an asset cannot be found in the
	// repository.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrBridgeNotFound is returned when a bridge cannot be found in the
	// repository.
	ErrBridgeNotFound = errors.New("bridge not found")
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrMarketDataNotFound is returned when no market data exists for the
	// requested category.
	ErrMarketDataNotFound = errors.New("market data not found")
	// ErrUsernameTaken is returned when creating a user with a username that
	// is already registered.
	ErrUsernameTaken = errors.New("username already taken")
)
