package services

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode classifies engine failures so callers can map them to transport
// responses without string matching.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "validation_error"
	ErrCodeConflict   ErrorCode = "conflict_error"
	ErrCodeDuplicate  ErrorCode = "duplicate_error"
	ErrCodeNotFound   ErrorCode = "not_found"
	ErrCodeInternal   ErrorCode = "internal_error"
)

// AppError is the error type every service returns for expected failures.
// Unexpected database errors are wrapped with ErrCodeInternal.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error

	// ConflictingID identifies the colliding reservation on overlap errors.
	ConflictingID uint
	// Fields lists missing/invalid fields on validation errors.
	Fields []string
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// HTTPStatus maps the code to the status the API layer should answer with.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidation, ErrCodeDuplicate:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string, fields ...string) *AppError {
	if len(fields) > 0 {
		message = fmt.Sprintf("%s: %s", message, strings.Join(fields, ", "))
	}
	return &AppError{Code: ErrCodeValidation, Message: message, Fields: fields}
}

func NewConflictError(message string, conflictingID uint) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message, ConflictingID: conflictingID}
}

func NewDuplicateError(message string) *AppError {
	return &AppError{Code: ErrCodeDuplicate, Message: message}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: resource + " no encontrada"}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message, Cause: cause}
}
