// Package webapi provides the HTTP boundary of the RWA Bridge Maker. It is
// organized into sub-packages per domain:
// - asset: tokenized asset endpoints
// - bridge: cross-chain bridge endpoints
// - activity: activity log endpoints
// - market: market data endpoints
// - stats: derived dashboard aggregate
// - user: registration and lookup
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/rwalabs/bridgemaker/pkg/app"
	activityweb "github.com/rwalabs/bridgemaker/webapi/activity"
	assetweb "github.com/rwalabs/bridgemaker/webapi/asset"
	bridgeweb "github.com/rwalabs/bridgemaker/webapi/bridge"
	"github.com/rwalabs/bridgemaker/webapi/common"
	marketweb "github.com/rwalabs/bridgemaker/webapi/market"
	statsweb "github.com/rwalabs/bridgemaker/webapi/stats"
	userweb "github.com/rwalabs/bridgemaker/webapi/user"
)

// SetupApp initializes Fiber with middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			if status == fiber.StatusNotFound {
				return common.NotFoundJSON(c, "Not found")
			}
			return common.InternalErrorJSON(c, "Internal server error")
		},
	})

	fiberApp.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(fiber.Map{"message": "Too many requests"})
		},
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("RWA Bridge Maker API is running")
	})

	statsweb.Routes(fiberApp, a.Ledger)
	assetweb.Routes(fiberApp, a.Ledger)
	bridgeweb.Routes(fiberApp, a.Ledger)
	activityweb.Routes(fiberApp, a.Ledger)
	marketweb.Routes(fiberApp, a.Ledger)
	userweb.Routes(fiberApp, a.Ledger)

	return fiberApp
}
