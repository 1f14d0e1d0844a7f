// Package apperr defines the error taxonomy shared by services and the HTTP layer.
// Services return errors built here; handlers classify them with errors.Is against the sentinels.
package apperr

import "errors"

// Sentinel kinds. Match with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrPersistence     = errors.New("persistence failure")
)

// Error pairs a sentinel kind with a message that is safe to show to the caller.
// Cause, when set, is kept for logging and errors.Is/As but never surfaced in Message.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// Validation reports missing or malformed input detected before any storage access.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// NotFound reports a referenced row that does not exist.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Forbidden reports an actor whose role is outside the allowed set.
func Forbidden(msg string) error {
	return &Error{Kind: ErrForbidden, Message: msg}
}

// Unauthenticated reports a request without a valid identity.
func Unauthenticated(msg string) error {
	return &Error{Kind: ErrUnauthenticated, Message: msg}
}

// Persistence wraps a storage failure behind a generic message.
func Persistence(msg string, cause error) error {
	return &Error{Kind: ErrPersistence, Message: msg, Cause: cause}
}

// IsClassified reports whether err already carries one of the caller-facing kinds
// (validation, not found, forbidden, unauthenticated).
func IsClassified(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrUnauthenticated)
}

// Message returns the caller-facing message for err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
