// Package asset exposes the tokenized-asset endpoints.
package asset

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	ledgersvc "github.com/rwalabs/bridgemaker/pkg/service/ledger"
	"github.com/rwalabs/bridgemaker/webapi/common"
)

// Routes registers the asset endpoints.
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Get("/api/assets", ListAssets(svc))
	app.Post("/api/assets", CreateAsset(svc))
	app.Get("/api/assets/:id", GetAsset(svc))
	app.Patch("/api/assets/:id", UpdateAsset(svc))
}

// ListAssets returns all assets, optionally filtered by ?owner=.
func ListAssets(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		assets, err := svc.ListAssets(c.Context(), c.Query("owner"))
		if err != nil {
			return common.InternalErrorJSON(c, "Failed to fetch assets")
		}
		return common.JSON(c, fiber.StatusOK, assets)
	}
}

// GetAsset returns a single asset by id.
func GetAsset(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.BadRequestJSON(c, "Invalid asset id", err)
		}
		a, err := svc.GetAsset(c.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrAssetNotFound) {
				return common.NotFoundJSON(c, "Asset not found")
			}
			return common.InternalErrorJSON(c, "Failed to fetch asset")
		}
		return common.JSON(c, fiber.StatusOK, a)
	}
}

// CreateAsset tokenizes a new asset and returns the created record.
func CreateAsset(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.AssetCreate](c, "Invalid asset data")
		if input == nil {
			return err // error response already written
		}
		a, err := svc.CreateAsset(c.Context(), input)
		if err != nil {
			return common.InternalErrorJSON(c, "Failed to create asset")
		}
		return common.JSON(c, fiber.StatusCreated, a)
	}
}

// UpdateAsset applies a partial update to an existing asset.
func UpdateAsset(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.BadRequestJSON(c, "Invalid asset id", err)
		}
		input, err := common.BindAndValidate[dto.AssetUpdate](c, "Invalid asset data")
		if input == nil {
			return err // error response already written
		}
		a, err := svc.UpdateAsset(c.Context(), id, input)
		if err != nil {
			if errors.Is(err, domain.ErrAssetNotFound) {
				return common.NotFoundJSON(c, "Asset not found")
			}
			return common.InternalErrorJSON(c, "Failed to update asset")
		}
		return common.JSON(c, fiber.StatusOK, a)
	}
}
