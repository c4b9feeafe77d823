// Package validator adapts go-playground/validator to echo and the domain validation error.
package validator

import (
	"reflect"
	"strings"

	domainerrors "fitplan/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate returns a *domainerrors.ValidationError listing every failing field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	verr := domainerrors.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), fe.Tag(), describe(fe))
	}

	return verr
}

// fieldPath drops the root struct name: CreateWorkoutRequest.exercises[0].sets -> exercises[0].sets.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}

	return path
}

func describe(fe validator.FieldError) string {
	name := fe.Field()

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "oneof":
		return name + " must be one of " + fe.Param()
	case "gt":
		return name + " must be greater than " + fe.Param()
	case "gte", "min":
		return name + " must be at least " + fe.Param()
	case "lte", "max":
		return name + " must be at most " + fe.Param()
	case "unique":
		return name + " must not contain duplicates"
	default:
		return name + " failed " + fe.Tag() + " validation"
	}
}
