package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

// AppError carries a sentinel kind, a client-facing message and, for
// validation failures, the fields that failed.
type AppError struct {
	Err     error
	Message string
	Fields  []string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id uint) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func ValidationFailed(message string, fields ...string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Fields:  fields,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// Forbidden is returned when the session user is not the record owner.
// HTTP handlers map this to 403.
func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}

func Conflict(message string, fields ...string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
		Fields:  fields,
	}
}

// FieldList renders the failing fields for error responses,
// e.g. "value, type".
func (e *AppError) FieldList() string {
	return strings.Join(e.Fields, ", ")
}
