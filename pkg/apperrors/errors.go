package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error type. Every error that reaches a client
// is either an AppError or gets collapsed into a generic internal one.
type AppError struct {
	StatusCode int         `json:"statusCode"`
	Code       ErrorCode   `json:"-"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Err        error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d:%s] %s (%v)", e.StatusCode, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d:%s] %s", e.StatusCode, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New is the base constructor.
func New(statusCode int, code ErrorCode, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, statusCode int, code ErrorCode, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

// WithDetails attaches a machine-readable details payload
// (e.g. a field -> message map for validation errors).
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- Common factories ---

// InternalError wraps an unexpected fault as a 500.
func InternalError(err error) *AppError {
	return Wrap(err, http.StatusInternalServerError, CodeInternalError, "Internal Server Error")
}

// ValidationError builds a 400 carrying a field -> message map.
func ValidationError(message string, details interface{}) *AppError {
	return New(http.StatusBadRequest, CodeValidationFailed, message).WithDetails(details)
}

// BadRequest builds a plain 400.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, CodeValidationFailed, message)
}

// Unauthorized builds a 401.
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden builds a 403.
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, CodeForbidden, message)
}

// NotFound builds a 404.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, message)
}

// Conflict builds a 400 for duplicate resources. The published API reports
// duplicate emails as 400, not 409, and clients depend on that.
func Conflict(message string) *AppError {
	return New(http.StatusBadRequest, CodeAlreadyExists, message)
}
