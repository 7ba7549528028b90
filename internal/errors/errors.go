package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when required request fields are absent.
	ErrMissingFields = errors.New("all fields are required")
	// ErrInvalidEmail is returned when an email fails the format check.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrUnauthorized is returned for bad credentials, inactive accounts and
	// missing sessions.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when a refresh token fails signature or expiry
	// validation.
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicate is returned when a unique field collides with another record.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound is returned when no record matches an id, or a listing is
	// empty.
	ErrNotFound = errors.New("record not found")
	// ErrHasDependents is returned when a delete is blocked by referencing
	// records.
	ErrHasDependents = errors.New("record has dependents")
)

type messageError struct {
	msg   string
	cause error
}

func (e *messageError) Error() string { return e.msg }

func (e *messageError) Unwrap() error { return e.cause }

// Message attaches a response message to a taxonomy error. errors.Is still
// matches the underlying sentinel, while Error() carries the exact text the
// API reports.
func Message(cause error, msg string) error {
	return &messageError{msg: msg, cause: cause}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
//
// The original API returns 400 both for empty listings and unknown ids; that
// convention is kept rather than normalised to 404.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrNotFound), errors.Is(err, ErrHasDependents):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrDuplicate):
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
