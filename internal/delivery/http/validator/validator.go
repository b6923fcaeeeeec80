// Package validator wires go-playground/validator into echo's Validator hook.
package validator

import (
	domainerrors "placelog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request structs against their
// `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator echo uses for c.Validate.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. A failed `required` tag maps to the
// KEY_ERROR contract for missing request body keys.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrKeyError.WrapMessage(err.Error())
	}

	return nil
}
