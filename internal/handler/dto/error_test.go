package dto

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{fmt.Errorf("%w: role USER cannot receive a report", domain.ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{fmt.Errorf("%w: %w", domain.ErrForbidden, domain.ErrNotAssignee), http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrReportNotFound, http.StatusNotFound, "REPORT_NOT_FOUND"},
		{fmt.Errorf("%w: x", domain.ErrTechnicianNotFound), http.StatusNotFound, "TECHNICIAN_NOT_FOUND"},
		{fmt.Errorf("%w: cannot receive", domain.ErrInvalidTransition), http.StatusConflict, "INVALID_STATUS"},
		{domain.ErrInvalidTechnician, http.StatusUnprocessableEntity, "INVALID_TECHNICIAN"},
		{domain.NewValidationError("title", "is required"), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, _ := MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestMapDomainError_InternalIsOpaque(t *testing.T) {
	_, _, message := MapDomainError(errors.New("pq: password authentication failed"))
	assert.Equal(t, "Internal server error", message)
}

func TestErrorResponseFor_ValidationDetails(t *testing.T) {
	err := &domain.ValidationError{Fields: map[string]string{"title": "is required"}}

	status, resp := ErrorResponseFor(err)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "validation failed", resp.Error.Message)
	assert.Equal(t, map[string]string{"title": "is required"}, resp.Error.Details)

	_, resp = ErrorResponseFor(domain.ErrReportNotFound)
	assert.Nil(t, resp.Error.Details)
}
