// Package services implements the per-entity use cases on top of the
// repositories: input validation, row/DTO conversion and error translation.
package services

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/database"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateInput checks `validate` struct tags and reports the first
// failing field as a validation error.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.ValidationFrom("invalid input", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.Validation("%s is required", fe.Field())
	case "email":
		return apperrors.Validation("%s must be a valid email address", fe.Field())
	default:
		return apperrors.Validation("%s failed %q check", fe.Field(), fe.Tag())
	}
}

// requireID enforces an explicit id on update inputs.
func requireID(id *uint) (uint, error) {
	if id == nil || *id == 0 {
		return 0, apperrors.Validation("id is required")
	}
	return *id, nil
}

// rejectBlank fails when an optional string is present but empty.
func rejectBlank(field string, value *string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return apperrors.Validation("%s must not be empty", field)
	}
	return nil
}

// translate turns integrity violations (unknown parent id and the like)
// into validation errors. Everything else passes through.
func translate(err error) error {
	if err != nil && database.IsConstraintViolation(err) {
		return apperrors.ValidationFrom("referenced record does not exist or constraint violated", err)
	}
	return err
}

// clock is swapped in tests.
type clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }
