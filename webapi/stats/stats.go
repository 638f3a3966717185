// Package stats exposes the derived dashboard aggregate.
package stats

import (
	"github.com/gofiber/fiber/v2"
	ledgersvc "github.com/rwalabs/bridgemaker/pkg/service/ledger"
	"github.com/rwalabs/bridgemaker/webapi/common"
)

// Routes registers the stats endpoint.
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Get("/api/stats", GetStats(svc))
}

// GetStats returns the dashboard aggregate, recomputed on every call.
func GetStats(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Stats(c.Context())
		if err != nil {
			return common.InternalErrorJSON(c, "Failed to fetch stats")
		}
		return common.JSON(c, fiber.StatusOK, s)
	}
}
