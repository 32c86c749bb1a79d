package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a request field to its constraint violation messages.
// It implements error so business rules (uniqueness, existence checks) can
// surface field-level failures through the same channel as tag validation.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report errors under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors converts validator.ValidationErrors into a
// FieldErrors map with client-facing messages.
func (cv *CustomValidator) FormatValidationErrors(err error) FieldErrors {
	errs := make(FieldErrors)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			errs[field] = append(errs[field], messageFor(field, e))
		}
	}

	return errs
}

func messageFor(field string, e validator.FieldError) string {
	name := strings.ReplaceAll(field, "_", " ")
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", name)
	case "max":
		return fmt.Sprintf("The %s must not be greater than %s characters.", name, e.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", name, e.Param())
	case "numeric":
		return fmt.Sprintf("The %s must be a number.", name)
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date.", name)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", name)
	case "gt", "gte":
		return fmt.Sprintf("The %s must be greater than %s.", name, e.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}

// TakenError builds the uniqueness violation for a single field in the
// same shape as tag validation failures.
func TakenError(field string) FieldErrors {
	name := strings.ReplaceAll(field, "_", " ")
	return FieldErrors{field: {fmt.Sprintf("The %s has already been taken.", name)}}
}

// InvalidSelectionError builds the existence violation for a reference
// field (e.g. an id that resolves to no record).
func InvalidSelectionError(field string) FieldErrors {
	name := strings.ReplaceAll(field, "_", " ")
	return FieldErrors{field: {fmt.Sprintf("The selected %s is invalid.", name)}}
}
