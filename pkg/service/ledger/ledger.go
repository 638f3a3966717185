// Package ledger provides the business logic over the ledger store: entity
// creation with its activity side effects, lookups, partial updates and the
// derived dashboard stats.
package ledger

import (
	"context"
	"log/slog"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	activityrepo "github.com/rwalabs/bridgemaker/pkg/repository/activity"
	assetrepo "github.com/rwalabs/bridgemaker/pkg/repository/asset"
	bridgerepo "github.com/rwalabs/bridgemaker/pkg/repository/bridge"
	marketrepo "github.com/rwalabs/bridgemaker/pkg/repository/market"
	userrepo "github.com/rwalabs/bridgemaker/pkg/repository/user"
	"github.com/rwalabs/bridgemaker/pkg/utils"
)

// StatsProvider derives the dashboard aggregate from the live collections.
type StatsProvider interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

// Service orchestrates all ledger operations for the HTTP boundary.
type Service struct {
	assets     assetrepo.Repository
	bridges    bridgerepo.Repository
	activities activityrepo.Repository
	markets    marketrepo.Repository
	users      userrepo.Repository
	stats      StatsProvider
	logger     *slog.Logger
}

// New creates a Service over the given repositories.
func New(
	assets assetrepo.Repository,
	bridges bridgerepo.Repository,
	activities activityrepo.Repository,
	markets marketrepo.Repository,
	users userrepo.Repository,
	stats StatsProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		assets:     assets,
		bridges:    bridges,
		activities: activities,
		markets:    markets,
		users:      users,
		stats:      stats,
		logger:     logger.With("service", "ledger"),
	}
}

// CreateAsset tokenizes a new asset. The store records the matching
// asset_created activity atomically with the insert.
func (s *Service) CreateAsset(
	ctx context.Context,
	create *dto.AssetCreate,
) (*domain.Asset, error) {
	a, err := s.assets.Create(ctx, create)
	if err != nil {
		s.logger.Error("failed to create asset", "name", create.Name, "error", err)
		return nil, err
	}
	s.logger.Info("asset tokenized", "id", a.ID, "symbol", a.TokenSymbol, "value", a.Value)
	return a, nil
}

// GetAsset retrieves an asset by id.
func (s *Service) GetAsset(ctx context.Context, id int) (*domain.Asset, error) {
	return s.assets.Get(ctx, id)
}

// ListAssets retrieves all assets, or only an owner's when owner is non-empty.
func (s *Service) ListAssets(ctx context.Context, owner string) ([]*domain.Asset, error) {
	if owner != "" {
		return s.assets.ListByOwner(ctx, owner)
	}
	return s.assets.List(ctx)
}

// UpdateAsset applies a partial update to an existing asset.
func (s *Service) UpdateAsset(
	ctx context.Context,
	id int,
	update *dto.AssetUpdate,
) (*domain.Asset, error) {
	a, err := s.assets.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info("asset updated", "id", a.ID)
	return a, nil
}

// CreateBridge configures a new bridge. The store forces the platform
// deployment fee and records the matching bridge_deployed activity.
func (s *Service) CreateBridge(
	ctx context.Context,
	create *dto.BridgeCreate,
) (*domain.Bridge, error) {
	b, err := s.bridges.Create(ctx, create)
	if err != nil {
		s.logger.Error("failed to create bridge", "name", create.Name, "error", err)
		return nil, err
	}
	s.logger.Info("bridge configured",
		"id", b.ID,
		"source", b.SourceChain,
		"target", b.TargetChain,
		"fee", b.DeploymentFee,
	)
	return b, nil
}

// GetBridge retrieves a bridge by id.
func (s *Service) GetBridge(ctx context.Context, id int) (*domain.Bridge, error) {
	return s.bridges.Get(ctx, id)
}

// ListBridges retrieves all bridges, or only an owner's when owner is
// non-empty.
func (s *Service) ListBridges(ctx context.Context, owner string) ([]*domain.Bridge, error) {
	if owner != "" {
		return s.bridges.ListByOwner(ctx, owner)
	}
	return s.bridges.List(ctx)
}

// UpdateBridge applies a partial update to an existing bridge.
func (s *Service) UpdateBridge(
	ctx context.Context,
	id int,
	update *dto.BridgeUpdate,
) (*domain.Bridge, error) {
	b, err := s.bridges.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info("bridge updated", "id", b.ID, "status", b.Status)
	return b, nil
}

// CreateActivity appends a log entry directly, outside the implicit
// create-side-effect path.
func (s *Service) CreateActivity(
	ctx context.Context,
	create *dto.ActivityCreate,
) (*domain.Activity, error) {
	a, err := s.activities.Create(ctx, create)
	if err != nil {
		s.logger.Error("failed to record activity", "type", create.Type, "error", err)
		return nil, err
	}
	return a, nil
}

// ListActivities retrieves activities newest first, or only an owner's when
// owner is non-empty.
func (s *Service) ListActivities(ctx context.Context, owner string) ([]*domain.Activity, error) {
	if owner != "" {
		return s.activities.ListByOwner(ctx, owner)
	}
	return s.activities.List(ctx)
}

// ListMarketData retrieves the snapshots of all categories.
func (s *Service) ListMarketData(ctx context.Context) ([]*domain.MarketData, error) {
	return s.markets.List(ctx)
}

// GetMarketData retrieves the snapshot for one category.
func (s *Service) GetMarketData(
	ctx context.Context,
	category domain.MarketCategory,
) (*domain.MarketData, error) {
	return s.markets.GetByCategory(ctx, category)
}

// ReplaceMarketData overwrites a category's snapshot wholesale.
func (s *Service) ReplaceMarketData(
	ctx context.Context,
	category domain.MarketCategory,
	replace *dto.MarketDataReplace,
) (*domain.MarketData, error) {
	m, err := s.markets.Replace(ctx, category, replace)
	if err != nil {
		return nil, err
	}
	s.logger.Info("market data replaced", "category", m.Category, "totalValue", m.TotalValue)
	return m, nil
}

// Stats derives the dashboard aggregate.
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.stats.Stats(ctx)
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *Service) CreateUser(
	ctx context.Context,
	create *dto.UserCreate,
) (*domain.User, error) {
	hashed, err := utils.HashPassword(create.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}
	u, err := s.users.Create(ctx, create.Username, hashed)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", "id", u.ID, "username", u.Username)
	return u, nil
}

// GetUser retrieves a user by id.
func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return s.users.Get(ctx, id)
}

// GetUserByUsername retrieves a user by username.
func (s *Service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}
