package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Blog website URLs must be https and hostname-shaped.
	_ = v.RegisterValidation("https_url", func(fl validator.FieldLevel) bool {
		return websiteURLPattern.MatchString(fl.Field().String())
	})
	// Rejects values that are only whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks a request body and returns field-level errors in the
// platform's errorsMessages shape, or nil when the body is valid.
func Validate(body interface{}) []FieldError {
	err := validate.Struct(body)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error(), Field: ""}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Message: messageFor(fe),
			Field:   fe.Field(),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " must not be empty"
	case "min":
		return fe.Field() + " is too short"
	case "max":
		return fe.Field() + " is too long"
	case "email":
		return fe.Field() + " must be a valid email"
	case "uuid":
		return fe.Field() + " must be a valid uuid"
	case "oneof":
		return fe.Field() + " has an invalid value"
	case "https_url":
		return fe.Field() + " must be a valid https url"
	default:
		return fe.Field() + " is invalid"
	}
}
