// Package user exposes the user registration and lookup endpoints.
package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	ledgersvc "github.com/rwalabs/bridgemaker/pkg/service/ledger"
	"github.com/rwalabs/bridgemaker/webapi/common"
)

// Routes registers the user endpoints.
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Post("/api/users", CreateUser(svc))
	app.Get("/api/users/:id", GetUser(svc))
}

// CreateUser registers a new user and returns the created record. A taken
// username is a payload problem, not a server fault.
func CreateUser(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.UserCreate](c, "Invalid user data")
		if input == nil {
			return err // error response already written
		}
		u, err := svc.CreateUser(c.Context(), input)
		if err != nil {
			if errors.Is(err, domain.ErrUsernameTaken) {
				return common.BadRequestJSON(c, "Invalid user data", err)
			}
			return common.InternalErrorJSON(c, "Failed to create user")
		}
		return common.JSON(c, fiber.StatusCreated, u)
	}
}

// GetUser returns a single user by id.
func GetUser(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.BadRequestJSON(c, "Invalid user id", err)
		}
		u, err := svc.GetUser(c.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return common.NotFoundJSON(c, "User not found")
			}
			return common.InternalErrorJSON(c, "Failed to fetch user")
		}
		return common.JSON(c, fiber.StatusOK, u)
	}
}
