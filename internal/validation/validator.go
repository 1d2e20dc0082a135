// Package validation checks request payloads against their declarative
// schemas and reports every failing field in declaration order.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
)

// Result is the outcome of checking one payload.
type Result struct {
	Valid  bool
	Errors []apperrors.Violation
}

// Validator evaluates struct validate tags plus the task and password rules.
// It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "password_complexity", func(fl validator.FieldLevel) bool {
		return CheckPassword(fl.Field().String())
	})
	mustRegister(v, "task_status", oneOf(model.Statuses))
	mustRegister(v, "task_priority", oneOf(model.Priorities))

	return &Validator{validate: v}
}

// Check validates payload, which must be a struct or a pointer to one.
func (v *Validator) Check(payload any) Result {
	err := v.validate.Struct(payload)
	if err == nil {
		return Result{Valid: true}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Result{Errors: []apperrors.Violation{{Message: err.Error()}}}
	}

	violations := make([]apperrors.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, apperrors.Violation{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return Result{Errors: violations}
}

// Validate implements echo.Validator. A failing payload yields a
// *apperrors.ValidationError.
func (v *Validator) Validate(i interface{}) error {
	res := v.Check(i)
	if res.Valid {
		return nil
	}
	return &apperrors.ValidationError{Violations: res.Errors}
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "task_status":
		return fmt.Sprintf("%s must be one of %s", field, join(model.Statuses))
	case "task_priority":
		return fmt.Sprintf("%s must be one of %s", field, join(model.Priorities))
	case "password_complexity":
		return fmt.Sprintf("%s must be %d-%d characters long and contain at least one lowercase letter, one uppercase letter and one digit",
			field, passwordPolicy.minLen, passwordPolicy.maxLen)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func oneOf[T ~string](allowed []T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, T(fl.Field().String()))
	}
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}
