package domain

import (
	"errors"
	"sort"
	"strings"
)

// Domain-specific errors for business logic validation.
var (
	// Report errors
	ErrReportNotFound    = errors.New("report not found")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Permission errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotAssignee     = errors.New("report is not assigned to this technician")
	ErrNotReporter     = errors.New("not report owner")

	// Identity errors
	ErrUserNotFound       = errors.New("user not found")
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrInvalidTechnician  = errors.New("invalid technician")
	ErrInvalidToken       = errors.New("invalid authentication token")

	// Validation errors
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries field-level detail for malformed input.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
