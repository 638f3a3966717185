// Package bridge exposes the cross-chain bridge endpoints.
package bridge

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	ledgersvc "github.com/rwalabs/bridgemaker/pkg/service/ledger"
	"github.com/rwalabs/bridgemaker/webapi/common"
)

// Routes registers the bridge endpoints.
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Get("/api/bridges", ListBridges(svc))
	app.Post("/api/bridges", CreateBridge(svc))
	app.Get("/api/bridges/:id", GetBridge(svc))
	app.Patch("/api/bridges/:id", UpdateBridge(svc))
}

// ListBridges returns all bridges, optionally filtered by ?owner=.
func ListBridges(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bridges, err := svc.ListBridges(c.Context(), c.Query("owner"))
		if err != nil {
			return common.InternalErrorJSON(c, "Failed to fetch bridges")
		}
		return common.JSON(c, fiber.StatusOK, bridges)
	}
}

// GetBridge returns a single bridge by id.
func GetBridge(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.BadRequestJSON(c, "Invalid bridge id", err)
		}
		b, err := svc.GetBridge(c.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrBridgeNotFound) {
				return common.NotFoundJSON(c, "Bridge not found")
			}
			return common.InternalErrorJSON(c, "Failed to fetch bridge")
		}
		return common.JSON(c, fiber.StatusOK, b)
	}
}

// CreateBridge configures a new bridge and returns the created record. The
// deployment fee in the response is always the platform fee.
func CreateBridge(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.BridgeCreate](c, "Invalid bridge data")
		if input == nil {
			return err // error response already written
		}
		b, err := svc.CreateBridge(c.Context(), input)
		if err != nil {
			return common.InternalErrorJSON(c, "Failed to create bridge")
		}
		return common.JSON(c, fiber.StatusCreated, b)
	}
}

// UpdateBridge applies a partial update to an existing bridge.
func UpdateBridge(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.BadRequestJSON(c, "Invalid bridge id", err)
		}
		input, err := common.BindAndValidate[dto.BridgeUpdate](c, "Invalid bridge data")
		if input == nil {
			return err // error response already written
		}
		b, err := svc.UpdateBridge(c.Context(), id, input)
		if err != nil {
			if errors.Is(err, domain.ErrBridgeNotFound) {
				return common.NotFoundJSON(c, "Bridge not found")
			}
			return common.InternalErrorJSON(c, "Failed to update bridge")
		}
		return common.JSON(c, fiber.StatusOK, b)
	}
}
