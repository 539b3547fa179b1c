package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates the caller is not allowed to perform the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstream indicates the store API failed or could not be reached.
var ErrUpstream = errors.New("upstream service error")

// AppError carries an HTTP status alongside the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FromStatus maps an upstream HTTP status to an AppError wrapping the matching sentinel.
func FromStatus(status int, message string) *AppError {
	switch {
	case status == http.StatusNotFound:
		return NewAppError(status, message, ErrNotFound)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return NewAppError(status, message, ErrValidation)
	case status == http.StatusConflict:
		return NewAppError(status, message, ErrDuplicate)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return NewAppError(status, message, ErrUnauthorized)
	default:
		return NewAppError(status, message, ErrUpstream)
	}
}

// StatusOf returns the HTTP status an error should be reported with.
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
