// Package validator adapts go-playground/validator to echo and to the
// field-level entries of VALIDATION_ERROR envelopes.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	return &CustomValidator{validate: v}
}

// Validate checks i and converts failures into a VALIDATION_ERROR.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	if verrs, ok := errors.Find[validator.ValidationErrors](err); ok {
		return domainerrors.NewValidationError(FieldErrors(verrs)...)
	}

	return errors.WithStack(err)
}

// FieldErrors converts validator failures into envelope field entries.
func FieldErrors(verrs validator.ValidationErrors) []domainerrors.FieldError {
	out := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe)
		out = append(out, domainerrors.FieldError{
			Field:   field,
			Message: message(field, fe),
		})
	}

	return out
}

// fieldPath drops the root struct name: "CreateNoteRequest.tags[0]" -> "tags[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func message(field string, fe validator.FieldError) string {
	isCollection := false
	switch fe.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		isCollection = true
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if isCollection {
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isCollection {
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "uuid", "uuid4", "uuid7":
		return field + " must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}
