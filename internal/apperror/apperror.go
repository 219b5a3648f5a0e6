package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrIDMismatch = errors.New("id mismatch")
	ErrQuery      = errors.New("query failed")
	ErrImport     = errors.New("import failed")
)

// AppError carries a caller-facing message alongside the error kind.
// The message is what ends up in the response body; the wrapped kind is
// what handlers switch on.
type AppError struct {
	Err     error  // error kind, one of the sentinels above
	Message string // caller-facing message
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// CourseNotFound reports that no course exists for the given id. The id is
// a string so handlers can echo back non-numeric path segments unchanged.
func CourseNotFound(id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("Course %s does not exist", id),
	}
}

// MissingFields reports every missing or invalid field in one message.
func MissingFields(fields []string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "Please provide the value for field : " + strings.Join(fields, ","),
	}
}

// IDMismatch reports that the payload id does not equal the route id.
// The message text is kept for compatibility with existing clients.
func IDMismatch() *AppError {
	return &AppError{
		Err:     ErrIDMismatch,
		Message: "The id does match the payload.",
	}
}

// Query wraps a store-level failure. The underlying error is logged by the
// caller and never surfaced to clients.
func Query(err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrQuery, err),
		Message: "Error in saving Course data.",
	}
}

// Import wraps a bulk-import decode or batch-insert failure.
func Import(err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrImport, err),
		Message: "Error in course data upload . Please try Again",
	}
}
