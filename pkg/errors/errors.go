package errors

import "fmt"

// HTTPError is an error carrying the HTTP status it should be served with.
// Delivery layers build these in mapError; pkg/response unwraps them.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Errorf creates a new HTTPError with a formatted message.
func Errorf(statusCode int, format string, args ...any) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: fmt.Sprintf(format, args...)}
}
