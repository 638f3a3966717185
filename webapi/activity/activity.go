// Package activity exposes the activity log endpoints.
package activity

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	ledgersvc "github.com/rwalabs/bridgemaker/pkg/service/ledger"
	"github.com/rwalabs/bridgemaker/webapi/common"
)

// Routes registers the activity endpoints.
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Get("/api/activities", ListActivities(svc))
	app.Post("/api/activities", CreateActivity(svc))
}

// ListActivities returns activities newest first, optionally filtered by
// ?owner=.
func ListActivities(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activities, err := svc.ListActivities(c.Context(), c.Query("owner"))
		if err != nil {
			return common.InternalErrorJSON(c, "Failed to fetch activities")
		}
		return common.JSON(c, fiber.StatusOK, activities)
	}
}

// CreateActivity appends a log entry and returns the created record.
func CreateActivity(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.ActivityCreate](c, "Invalid activity data")
		if input == nil {
			return err // error response already written
		}
		a, err := svc.CreateActivity(c.Context(), input)
		if err != nil {
			return common.InternalErrorJSON(c, "Failed to create activity")
		}
		return common.JSON(c, fiber.StatusCreated, a)
	}
}
