// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	"strings"

	domainerrors "classteacher/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator used by the echo server. Struct tags
// drive the checks; violations come back in the same {pointer, message}
// shape as the business-level validation.
func New() *echoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	ok := false
	if fieldErrs, ok = err.(validator.ValidationErrors); !ok {
		return err
	}

	ve := domainerrors.NewValidationError()
	for _, fieldErr := range fieldErrs {
		ve.Add(pointerFor(fieldErr), messageFor(fieldErr))
	}

	return ve.ErrOrNil()
}

func pointerFor(fieldErr validator.FieldError) string {
	// Field() is the Go field name; the wire uses snake_case.
	return toSnake(fieldErr.Field())
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "e164":
		return "Enter a valid phone number"
	case "max":
		return "Value is too long"
	case "min":
		return "Value is too short"
	case "uuid":
		return "Enter a valid UUID"
	default:
		return "Invalid value"
	}
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')

			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
