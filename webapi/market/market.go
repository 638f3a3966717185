// Package market exposes the market data endpoints.
package market

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	ledgersvc "github.com/rwalabs/bridgemaker/pkg/service/ledger"
	"github.com/rwalabs/bridgemaker/webapi/common"
)

// Routes registers the market data endpoints.
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Get("/api/market-data", ListMarketData(svc))
	app.Get("/api/market-data/:category", GetMarketData(svc))
	app.Put("/api/market-data/:category", ReplaceMarketData(svc))
}

// ListMarketData returns the snapshots of all categories.
func ListMarketData(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.ListMarketData(c.Context())
		if err != nil {
			return common.InternalErrorJSON(c, "Failed to fetch market data")
		}
		return common.JSON(c, fiber.StatusOK, data)
	}
}

// GetMarketData returns the snapshot for a single category.
func GetMarketData(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := domain.MarketCategory(c.Params("category"))
		if !category.Valid() {
			return common.BadRequestJSON(c, "Invalid market category", nil)
		}
		m, err := svc.GetMarketData(c.Context(), category)
		if err != nil {
			if errors.Is(err, domain.ErrMarketDataNotFound) {
				return common.NotFoundJSON(c, "Market data not found")
			}
			return common.InternalErrorJSON(c, "Failed to fetch market data")
		}
		return common.JSON(c, fiber.StatusOK, m)
	}
}

// ReplaceMarketData overwrites a category's snapshot wholesale.
func ReplaceMarketData(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := domain.MarketCategory(c.Params("category"))
		if !category.Valid() {
			return common.BadRequestJSON(c, "Invalid market category", nil)
		}
		input, err := common.BindAndValidate[dto.MarketDataReplace](c, "Invalid market data")
		if input == nil {
			return err // error response already written
		}
		m, err := svc.ReplaceMarketData(c.Context(), category, input)
		if err != nil {
			return common.InternalErrorJSON(c, "Failed to update market data")
		}
		return common.JSON(c, fiber.StatusOK, m)
	}
}
