package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows its HTTP status.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.Code
	}
	return 0
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// BadRequestf returns a bad-request HTTPError with a formatted message.
func BadRequestf(format string, args ...any) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}
