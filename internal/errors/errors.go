// Package errors defines the domain error kinds shared by every use case.
// Handlers translate a kind into an HTTP status; use cases never deal in
// status codes or driver errors directly.
package errors

import (
	"errors"
	"fmt"
)

// Domain error kinds. Match them with Is, never by comparing messages.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrTooManyRequests = errors.New("too many requests")
)

// clientKinds are the kinds caused by the caller rather than by the service.
var clientKinds = []error{
	ErrInvalidInput,
	ErrUnauthorized,
	ErrForbidden,
	ErrNotFound,
	ErrConflict,
	ErrTooManyRequests,
}

// DetailedError attaches a client-safe message to a kind. Error returns the
// message alone; the kind is only reachable through Unwrap.
type DetailedError struct {
	Kind    error
	Message string
}

func (e *DetailedError) Error() string {
	return e.Message
}

func (e *DetailedError) Unwrap() error {
	return e.Kind
}

// New is errors.New, re-exported so callers need a single errors import.
func New(message string) error {
	return errors.New(message)
}

// NewDetailed returns a DetailedError of kind with message.
func NewDetailed(kind error, message string) error {
	return &DetailedError{Kind: kind, Message: message}
}

// NewDetailedf is NewDetailed with a formatted message.
func NewDetailedf(kind error, format string, args ...any) error {
	return NewDetailed(kind, fmt.Sprintf(format, args...))
}

// Detail returns the message of the outermost DetailedError in err's tree.
func Detail(err error) (string, bool) {
	var detailed *DetailedError
	if !errors.As(err, &detailed) {
		return "", false
	}
	return detailed.Message, true
}

// IsClientError reports whether err carries one of the caller-caused kinds.
func IsClientError(err error) bool {
	for _, kind := range clientKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// Wrap prefixes err with message, keeping it in the chain. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
