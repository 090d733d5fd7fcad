package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired = "is required"
	ErrNotBlank = "must not be blank"
	ErrMinValue = "must be at least %s"
	ErrMaxValue = "must be at most %s"
	ErrMinLen   = "must contain at least %s item(s)"
	ErrMaxLen   = "must be at most %s characters long"
	ErrEmail    = "must be a valid email address"
	ErrInvalid  = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("notblank", validateNotBlank)

	return validator
}

// jsonFieldName makes field errors report the JSON name of a field so
// clients see the same key they sent.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}

	return name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "notblank":
		return ErrNotBlank
	case "email":
		return ErrEmail
	case "min":
		if isSized(err.Kind()) {
			return fmt.Sprintf(ErrMinLen, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if isSized(err.Kind()) {
			return fmt.Sprintf(ErrMaxLen, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	default:
		return ErrInvalid
	}
}

func isSized(kind reflect.Kind) bool {
	return kind == reflect.String || kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map
}
