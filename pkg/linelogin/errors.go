package linelogin

import (
	"errors"
	"fmt"
)

// ErrorResponse is the provider's error envelope.
// https://developers.line.biz/en/reference/line-login/#error-responses
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Error is implemented by exactly three kinds: *APIError, *TransportError and
// *SystemError. Every failed Client call returns one of them.
type Error interface {
	error
	StatusCode() int
	lineLoginError()
}

// APIError is a failure reported by the provider with a recognizable error envelope.
type APIError struct {
	Status   int
	Body     ErrorResponse
	Warnings []string
	RawBody  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("line login api error (status %d): %s: %s", e.Status, e.Body.Error, e.Body.ErrorDescription)
}

func (e *APIError) StatusCode() int { return e.Status }
func (*APIError) lineLoginError()   {}

// TransportError means a status was received but the body could not be read.
// Body holds the read failure's diagnostic text.
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("line login transport error (status %d): %s", e.Status, e.Body)
}

func (e *TransportError) StatusCode() int { return e.Status }
func (*TransportError) lineLoginError()   {}

// SystemError is a local failure: connection, encoding, JSON syntax, or a body
// matching neither the expected shape nor the error envelope. It carries no status.
type SystemError struct {
	Message string
	Err     error
}

func newSystemError(err error) *SystemError {
	return &SystemError{Message: err.Error(), Err: err}
}

func (e *SystemError) Error() string {
	return "line login system error: " + e.Message
}

func (e *SystemError) Unwrap() error { return e.Err }
func (*SystemError) StatusCode() int { return 0 }
func (*SystemError) lineLoginError() {}

// StatusCode returns the HTTP status carried by err, or 0 for system errors
// and errors not produced by this package.
func StatusCode(err error) int {
	var le Error
	if errors.As(err, &le) {
		return le.StatusCode()
	}
	return 0
}

// ErrorBody returns the provider error envelope when err is an *APIError.
func ErrorBody(err error) (*ErrorResponse, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &apiErr.Body, true
	}
	return nil, false
}
