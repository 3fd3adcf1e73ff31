// Package validator plugs go-playground/validator into echo so request
// DTOs are checked right after binding. Required-field misses are
// reported as missing-field errors naming the JSON field; everything
// else surfaces as a validation failure on the field.
package validator

import (
	"reflect"
	"strings"

	domainerrors "homestay/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type requestValidator struct {
	validate *playground.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() echo.Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Report fields under their JSON names, matching what clients sent.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &requestValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "request validation failed")
	}

	// Report the first offending field; validation is all-or-nothing
	// per request anyway.
	first := fieldErrs[0]
	if first.Tag() == "required" {
		return domainerrors.NewMissingFieldError(first.Field())
	}

	return domainerrors.NewValidationError(first.Field(), first.Value(), "failed rule "+first.Tag())
}
