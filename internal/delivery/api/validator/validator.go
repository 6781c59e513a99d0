// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate checks the struct and flattens field errors into one readable message.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, describe(fieldErr))
	}

	return &Error{Fields: messages}
}

// Error lists every failed field.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return strings.Join(e.Fields, "; ")
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fieldErr.Field(), fieldErr.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fieldErr.Field(), fieldErr.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}
}
