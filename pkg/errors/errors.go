package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common application errors with proper types for error handling

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAccessDenied indicates the user doesn't have permission
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates missing or invalid authentication
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict indicates a conflict with existing data
	ErrConflict = errors.New("conflict")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")

	// ErrNotLoggedIn indicates no valid session snapshot exists locally
	ErrNotLoggedIn = errors.New("not logged in")
)

// APIError represents a non-2xx response from the backend. It carries the
// status code and status text so callers can branch with errors.Is or
// errors.As instead of parsing message strings.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d %s (%s)", e.StatusCode, e.Status, e.Endpoint)
}

// Unwrap maps well-known status codes onto the sentinel errors above.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrAccessDenied
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidInput
	}
	if e.StatusCode >= 500 {
		return ErrInternal
	}
	return nil
}

// NewAPIError creates an APIError for a failed backend call
func NewAPIError(statusCode int, status, endpoint string) *APIError {
	return &APIError{StatusCode: statusCode, Status: status, Endpoint: endpoint}
}

// DecodeError indicates the backend returned a 2xx response whose body did
// not match the expected shape. Failing at the boundary keeps malformed
// payloads from propagating zero values into callers.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError wraps a JSON or schema validation failure
func NewDecodeError(endpoint string, err error) *DecodeError {
	return &DecodeError{Endpoint: endpoint, Err: err}
}

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
