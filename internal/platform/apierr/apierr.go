package apierr

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
)

// Error pairs an HTTP status and machine code with the client-facing message.
// Err is the underlying cause and is never sent to the client.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code, message string, err error) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: err}
}

func NotFound(message string, err error) *Error {
	return New(http.StatusNotFound, "not_found", message, err)
}

func BadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, "invalid_request", message, err)
}

func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, "internal_error", message, err)
}

// From classifies err by the service sentinels it wraps. fallback is the
// message used for anything that is not a known client error.
func From(err error, fallback string) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		return NotFound(fallback, err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		return BadRequest(fallback, err)
	case errors.Is(err, pkgerrors.ErrConflict):
		return New(http.StatusConflict, "conflict", fallback, err)
	default:
		return Internal(fallback, err)
	}
}
