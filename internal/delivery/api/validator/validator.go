// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes one rejected field using its JSON name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json tag.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate checks the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Details turns a validation error into per-field descriptions. Other errors yield nil.
func Details(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, FieldError{
			Field: fieldErr.Field(),
			Rule:  fieldErr.Tag(),
			Param: fieldErr.Param(),
		})
	}

	return details
}
