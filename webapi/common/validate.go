package common

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Money fields travel as decimal strings; reject anything that does not
	// parse as a decimal before it reaches the store.
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(fl.Field().String())
		return err == nil
	})
	return v
}

// BindAndValidate parses the request body into T and validates it. On
// failure it writes the 400 response itself and returns nil with the error;
// handlers should return the error as-is.
func BindAndValidate[T any](c *fiber.Ctx, message string) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, BadRequestJSON(c, message, err)
	}
	if err := validate.Struct(&input); err != nil {
		return nil, BadRequestJSON(c, message, err)
	}
	return &input, nil
}
