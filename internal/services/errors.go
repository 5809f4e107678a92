// internal/services/errors.go
package services

import (
	"errors"

	"github.com/curioshop/curios-backend/internal/utils"
)

// Sentinel errors the transport layer maps onto HTTP status codes.
var (
	ErrNotFound             = errors.New("not found")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrConflict             = errors.New("conflict")
	ErrInvalidPage          = errors.New("invalid page")
)

// ValidationError carries per-field messages for a 400 response.
type ValidationError struct {
	Fields utils.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func newValidationError(err error) *ValidationError {
	return &ValidationError{Fields: utils.GetFieldErrors(err)}
}

func fieldValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: utils.FieldErrors{field: []string{message}}}
}
