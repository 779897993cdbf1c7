// Package dto holds the request and response bodies of the HTTP API.
package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/aliskhannn/keepsafe/internal/model"
)

// DateLayout is the wire format of expiration dates.
const DateLayout = "2006-01-02"

// NewValidator returns a validator that also understands the "category" tag.
func NewValidator() *validator.Validate {
	v := validator.New()

	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return model.IsCategory(fl.Field().String())
	})

	return v
}
