package util

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// BindAndValidateBody binds the request body into v and validates it with
// the echo validator.
func BindAndValidateBody(c echo.Context, v any) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validate(c, v)
}

func validate(c echo.Context, v any) error {
	if err := c.Validate(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return echo.NewHTTPError(http.StatusBadRequest, verrs.Error()).SetInternal(err)
		}

		return err
	}

	return nil
}

// ValidateAndReturn validates the response payload and writes it as JSON.
func ValidateAndReturn(c echo.Context, code int, v any) error {
	if err := c.Validate(v); err != nil {
		return errors.Wrap(err, "invalid response payload")
	}

	return c.JSON(code, v)
}
