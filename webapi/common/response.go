// Package common holds the response and binding helpers shared by every
// webapi sub-package. Successful responses carry the bare record(s) so the
// JSON matches the data model exactly; failures carry a {message} body, with
// an additional {error} detail for rejected payloads.
package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rwalabs/bridgemaker/pkg/domain"
)

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JSON writes a success response with the given status and bare payload.
func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// NotFoundJSON writes a 404 with a {message} body.
func NotFoundJSON(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(errorBody{Message: message})
}

// BadRequestJSON writes a 400 with a {message, error} body.
func BadRequestJSON(c *fiber.Ctx, message string, err error) error {
	body := errorBody{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// InternalErrorJSON writes a 500 with a {message} body. The underlying error
// stays out of the response body.
func InternalErrorJSON(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Message: message})
}

// ErrorToStatusCode maps domain errors to HTTP status codes. Absent-value
// lookups become 404, validation-class failures become 400, everything else
// is a 500.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrAssetNotFound),
		errors.Is(err, domain.ErrBridgeNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMarketDataNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUsernameTaken):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
