// Package apperror defines the error taxonomy shared by usecases and handlers.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind string

const (
	KindMissingAuth        Kind = "missing_auth"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindInvalidPin         Kind = "invalid_pin"
	KindAccountLocked      Kind = "account_locked"
	KindValidation         Kind = "validation_error"
	KindNotFound           Kind = "not_found"
	KindInvalidTransition  Kind = "invalid_transition"
	KindConflict           Kind = "conflict"
	KindUpstream           Kind = "upstream_failure"
	KindInternal           Kind = "internal_error"
)

// Error is an error with a kind and a client-safe message
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around a cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func MissingAuth(message string) *Error        { return New(KindMissingAuth, message) }
func InvalidCredentials(message string) *Error { return New(KindInvalidCredentials, message) }
func InvalidPin(message string) *Error         { return New(KindInvalidPin, message) }
func AccountLocked(message string) *Error      { return New(KindAccountLocked, message) }
func Validation(message string) *Error         { return New(KindValidation, message) }
func NotFound(message string) *Error           { return New(KindNotFound, message) }
func Conflict(message string) *Error           { return New(KindConflict, message) }

// InvalidTransition reports a rejected order status change
func InvalidTransition(current, requested string) *Error {
	return New(KindInvalidTransition, fmt.Sprintf("invalid status transition from %s to %s", current, requested))
}

// Internal wraps an unexpected failure; the message shown to clients stays generic
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// Upstream wraps a failure of the database or another dependency
func Upstream(message string, err error) *Error {
	return Wrap(KindUpstream, message, err)
}

// KindOf returns the kind of err, or KindInternal for untyped errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps err to the response status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindMissingAuth, KindInvalidCredentials, KindInvalidPin:
		return http.StatusUnauthorized
	case KindAccountLocked:
		return http.StatusLocked
	case KindValidation, KindInvalidTransition:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text safe to show a client. Internal and
// upstream failures never leak their cause.
func PublicMessage(err error, fallback string) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return fallback
	}
	switch appErr.Kind {
	case KindInternal, KindUpstream:
		return fallback
	}
	return appErr.Message
}
