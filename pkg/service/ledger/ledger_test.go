package ledger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwalabs/bridgemaker/infra/repository/memory"
	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	ledgersvc "github.com/rwalabs/bridgemaker/pkg/service/ledger"
	"github.com/rwalabs/bridgemaker/pkg/utils"
)

func newService() *ledgersvc.Service {
	store := memory.NewLedger()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ledgersvc.New(
		memory.NewAssetRepository(store),
		memory.NewBridgeRepository(store),
		memory.NewActivityRepository(store),
		memory.NewMarketRepository(store),
		memory.NewUserRepository(store),
		store,
		logger,
	)
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, &dto.UserCreate{
		Username: "alice",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", u.Password)
	assert.True(t, utils.CheckPasswordHash("secret-password", u.Password))

	_, err = svc.CreateUser(ctx, &dto.UserCreate{
		Username: "alice",
		Password: "another-password",
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestListAssetsOwnerFilter(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	all, err := svc.ListAssets(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.ListAssets(ctx, "user1")
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	none, err := svc.ListAssets(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateBridgeRecordsActivity(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	b, err := svc.CreateBridge(ctx, &dto.BridgeCreate{
		Name:        "SOL-VARA Bridge",
		SourceChain: "Solana",
		TargetChain: "Vara Network",
		BridgeType:  "secure",
		Owner:       "user1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BridgeDeploymentFee, b.DeploymentFee)

	activities, err := svc.ListActivities(ctx, "")
	require.NoError(t, err)
	require.Len(t, activities, 4)
	assert.Equal(t, domain.ActivityBridgeDeployed, activities[0].Type)
}

func TestStatsDerivedOnDemand(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "$0.3M", stats.TVL)
	assert.Equal(t, 300, stats.TotalTransactions)
}
