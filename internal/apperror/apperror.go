// Package apperror defines the application's error taxonomy.
//
// Services return these domain errors; the HTTP layer translates them to
// responses. The mapping encodes a deliberate policy asymmetry:
//
//   - ErrUnauthenticated → redirect to the login page (the visitor can
//     recover by logging in)
//   - ErrNotFound        → 404, including "exists but you don't own it".
//     A non-owner must not be able to distinguish someone else's record
//     from a nonexistent one, so ownership failures are NotFound, never
//     403.
//   - ErrValidation      → the submitted page is re-rendered with the
//     error attached to the offending field; nothing is persisted.
//   - ErrConflict        → duplicate unique value (e.g. username taken).
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("authentication required")
)

// AppError carries a sentinel (for errors.Is dispatch), a human-readable
// message, and optionally the form field the message belongs to.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports a missing record. Also used when the record exists
// but belongs to someone else — see the package comment.
func NotFound(resource, key string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, key),
	}
}

// ValidationFailed attaches a message to a single form field.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict reports a uniqueness violation on a resource.
func Conflict(resource, key string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s already exists: %s", resource, key),
	}
}

// Unauthenticated reports that the request has no valid session.
// The HTTP layer turns this into a redirect to the login page.
func Unauthenticated() *AppError {
	return &AppError{
		Err:     ErrUnauthenticated,
		Message: "authentication required",
	}
}

// FieldOf returns the field name of the first AppError in err's chain,
// or "" if there is none. Handlers use it to decide which form field an
// error message should be rendered next to.
func FieldOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
