// Package app wires the ledger store, repositories and services into a
// single application object handed to the HTTP boundary. The store is
// constructed here once per App; tests build their own isolated instances
// instead of sharing an ambient singleton.
package app

import (
	"log/slog"

	"github.com/rwalabs/bridgemaker/infra/repository/memory"
	"github.com/rwalabs/bridgemaker/pkg/config"
	ledgersvc "github.com/rwalabs/bridgemaker/pkg/service/ledger"
)

// App bundles the configuration and services consumed by the boundary.
type App struct {
	Config *config.App
	Ledger *ledgersvc.Service
	Logger *slog.Logger
}

// New constructs the application over a freshly seeded in-memory ledger.
func New(cfg *config.App, logger *slog.Logger) *App {
	store := memory.NewLedger()
	svc := ledgersvc.New(
		memory.NewAssetRepository(store),
		memory.NewBridgeRepository(store),
		memory.NewActivityRepository(store),
		memory.NewMarketRepository(store),
		memory.NewUserRepository(store),
		store,
		logger,
	)
	return &App{
		Config: cfg,
		Ledger: svc,
		Logger: logger,
	}
}
