// Package apperrors defines the application error type shared by the domain,
// service and transport layers. An Error carries the HTTP status and a stable
// code so handlers can map failures without inspecting messages.
package apperrors

import (
	"errors"
	"net/http"
)

// Error is an application error with an HTTP status and a machine readable code.
type Error struct {
	status  int
	code    string
	message string
	cause   error
}

// New creates an Error.
func New(status int, code, message string) *Error {
	return &Error{status: status, code: code, message: message}
}

// NotFound creates a 404 error.
func NotFound(code, message string) *Error {
	return New(http.StatusNotFound, code, message)
}

// BadRequest creates a 400 error.
func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

// Unauthorized creates a 401 error.
func Unauthorized(code, message string) *Error {
	return New(http.StatusUnauthorized, code, message)
}

// Conflict creates a 409 error.
func Conflict(code, message string) *Error {
	return New(http.StatusConflict, code, message)
}

// Internal creates a 500 error.
func Internal(code, message string) *Error {
	return New(http.StatusInternalServerError, code, message)
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.code == e.code
}

// HTTPStatus returns the HTTP status the error maps to.
func (e *Error) HTTPStatus() int {
	return e.status
}

// Code returns the stable error code.
func (e *Error) Code() string {
	return e.code
}

// Message returns the client facing message without the cause.
func (e *Error) Message() string {
	return e.message
}

// Wrap returns a copy of e carrying cause. The copy still matches e with errors.Is.
func (e *Error) Wrap(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

// WithMessage returns a copy of e with a different client facing message.
func (e *Error) WithMessage(message string) *Error {
	c := *e
	c.message = message
	return &c
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
