package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// APIError is any non-2xx response from the backend API. Message carries the
// server's own message verbatim; callers surface it to the user as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func NewAPIError(status int, msg string) *APIError {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

func (err APIError) Error() string {
	return fmt.Sprintf("api: %d %s", err.StatusCode, err.Message)
}

func apiErrorStatus(err error) int {
	if aerr, ok := errors.Cause(err).(*APIError); ok {
		return aerr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether the backend rejected the session (HTTP 401).
// The gateway has already torn the session down by the time callers see this.
func IsUnauthorized(err error) bool { return apiErrorStatus(err) == http.StatusUnauthorized }

// IsForbidden reports a role mismatch (HTTP 403).
func IsForbidden(err error) bool { return apiErrorStatus(err) == http.StatusForbidden }

func IsNotFound(err error) bool { return apiErrorStatus(err) == http.StatusNotFound }

func IsConflict(err error) bool { return apiErrorStatus(err) == http.StatusConflict }

// IsBadRequest reports a server-side validation failure (HTTP 400).
func IsBadRequest(err error) bool { return apiErrorStatus(err) == http.StatusBadRequest }

// APIErrorMessage returns the backend's message for an APIError, or "" for any
// other error (network failures get a generic message instead).
func APIErrorMessage(err error) string {
	if aerr, ok := errors.Cause(err).(*APIError); ok {
		return aerr.Message
	}
	return ""
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
