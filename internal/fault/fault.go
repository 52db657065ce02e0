// Package fault defines the error taxonomy shared by Marquee's services. Services
// return fault errors with user-facing messages, and the API layer converts them to
// HTTP responses based on their Kind.
package fault

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Unknown Kind = iota
	KindValidation
	KindAuth
	KindConflict
	KindNotFound
	KindProvider
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindAuth:
		return "AUTH_ERROR"
	case KindConflict:
		return "CONFLICT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindProvider:
		return "PROVIDER_ERROR"
	case KindPersistence:
		return "PERSISTENCE_ERROR"
	}

	return "INTERNAL_ERROR"
}

// Status returns the HTTP status code errors of this kind are reported with.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// Error is a classified error. Message is safe to show to the end user, whereas
// Err (if any) is the underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) error { return &Error{Kind: KindValidation, Message: message} }
func Auth(message string) error       { return &Error{Kind: KindAuth, Message: message} }
func Conflict(message string) error   { return &Error{Kind: KindConflict, Message: message} }
func NotFound(message string) error   { return &Error{Kind: KindNotFound, Message: message} }

func AuthCause(message string, cause error) error {
	return &Error{Kind: KindAuth, Message: message, Err: cause}
}

func Provider(message string, cause error) error {
	return &Error{Kind: KindProvider, Message: message, Err: cause}
}

func Persistence(message string, cause error) error {
	return &Error{Kind: KindPersistence, Message: message, Err: cause}
}

// KindOf returns the Kind of the first fault Error found in the
// chain, or Unknown.
func KindOf(err error) Kind {
	var fErr *Error
	if errors.As(err, &fErr) {
		return fErr.Kind
	}

	return Unknown
}

// Is reports whether err is a fault of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
