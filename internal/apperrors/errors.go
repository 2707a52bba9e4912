// Package apperrors defines the error taxonomy shared by repositories, services
// and the procedure layer.
//
// Callers classify errors with errors.Is against the sentinels below; the
// constructors wrap the sentinel together with the underlying cause so both
// remain reachable through errors.Is / errors.As.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a lookup by id matched no row.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates caller-supplied input that cannot be accepted.
	ErrValidation = errors.New("validation failed")

	// ErrDatabase indicates a statement, constraint or connection failure
	// reported by the database driver.
	ErrDatabase = errors.New("database failure")

	// ErrConnection indicates the database could not be reached or migrated
	// at startup.
	ErrConnection = errors.New("connection failure")
)

// NotFound reports that the entity with the given id does not exist.
func NotFound(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// Validation reports invalid input with a human-readable message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ValidationFrom wraps a lower-level error (e.g. a constraint violation) as a
// validation error while keeping the cause in the chain.
func ValidationFrom(message string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrValidation, message, cause)
}

// Database wraps a driver error for the given operation.
// A nil cause yields nil so call sites can wrap unconditionally.
func Database(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrDatabase, cause)
}

// Connection wraps a startup-time connection or migration error.
func Connection(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrConnection, cause)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
