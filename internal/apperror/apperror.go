package apperror

import "errors"

type Code string

const (
	CodeValidation Code = "VALIDATION"
	CodeNotFound   Code = "NOT_FOUND"
	CodeForbidden  Code = "FORBIDDEN"
	CodeConflict   Code = "CONFLICT"
	CodeInternal   Code = "INTERNAL"
)

// Error is the typed failure every service returns. The HTTP layer maps the
// code to a status; services never touch the response themselves.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string // per-field messages, validation only
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewValidation(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

func NewNotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// NewInternal wraps an unexpected failure without leaking its detail to the
// client; the cause stays reachable for logging via Unwrap.
func NewInternal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "internal server error", cause: cause}
}

// From extracts a typed error, or nil when err is not one.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsNotFound(err error) bool {
	appErr := From(err)
	return appErr != nil && appErr.Code == CodeNotFound
}
