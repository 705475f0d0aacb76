// Package errors defines the stable, user-facing error taxonomy of the
// account service. Callers branch on these kinds programmatically; the
// transport layer maps them to status codes and localized messages.
package errors

import (
	"net/http"

	"roster/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors of the same kind by business code, so values derived
// with WithDetails still compare equal to their predefined kind.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Wrap attaches a root cause to this error kind. The result still matches
// the kind under errors.Is, while the cause stays reachable through Unwrap
// for logging and diagnostics. The cause is never rendered to callers.
func (e *BaseError) Wrap(cause error) error {
	if cause == nil {
		return e
	}

	return &kindError{kind: e, cause: cause}
}

// kindError pairs an error kind with the collaborator fault that produced it.
type kindError struct {
	kind  *BaseError
	cause error
}

func (e *kindError) Error() string {
	return e.kind.message + ": " + e.cause.Error()
}

// Is matches the attached kind so callers can branch on it.
func (e *kindError) Is(target error) bool {
	return e.kind.Is(target)
}

// Unwrap exposes the root cause for errors.Is/As traversal.
func (e *kindError) Unwrap() error {
	return e.cause
}

// HTTPCode returns the HTTP status code of the kind
func (e *kindError) HTTPCode() int { return e.kind.httpCode }

// ErrorCode returns the business error code of the kind
func (e *kindError) ErrorCode() string { return e.kind.errorCode }

// Message returns the user-friendly message of the kind only; the cause is
// internal and must not leak outward.
func (e *kindError) Message() string { return e.kind.message }

// Details returns detailed error information of the kind
func (e *kindError) Details() string { return e.kind.details }

// Predefined error kinds
var (
	// Input validation errors (caller's fault, not retryable as-is)
	ErrMissingField = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELD",
		"a required field is missing",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"the email address is not valid",
		"",
	)

	ErrInvalidNickname = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NICKNAME",
		"the nickname is not valid",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"the password does not meet the strength requirements",
		"",
	)

	// Expected business conditions
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"this email is already registered",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"no account matches the given email",
		"",
	)

	ErrInvalidCredential = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIAL",
		"password does not match",
		"",
	)

	// Umbrella kinds for unexpected collaborator faults. Each operation
	// reports its own umbrella; the root cause travels on the chain.
	ErrLookupFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOOKUP_FAILED",
		"failed to look up account",
		"",
	)

	ErrCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CREATE_FAILED",
		"failed to create account",
		"",
	)

	ErrUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPDATE_FAILED",
		"failed to update account",
		"",
	)

	ErrDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"DELETE_FAILED",
		"failed to delete account",
		"",
	)
)
