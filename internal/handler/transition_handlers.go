package handler

import (
	"context"
	"net/http"

	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/handler/dto"
	"github.com/mtlprog/dormreport/internal/service"
)

type transitionFunc func(ctx context.Context, actor *domain.Identity, reportID string) (*domain.Report, error)

// serveTransition runs a body-less lifecycle transition and writes the updated report.
func serveTransition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	reportID, ok := extractReportID(w, r)
	if !ok {
		return
	}

	report, err := fn(r.Context(), actor, reportID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewReportResponse(report))
}

// handleReceiveReport handles POST /api/v1/reports/{id}/receive
// @Summary Receive a report
// @Description Admin acknowledges a BARU report, moving it to DIPROSES.
// @Tags lifecycle
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/receive [post]
func (h *Handler) handleReceiveReport(w http.ResponseWriter, r *http.Request) {
	serveTransition(w, r, h.reportService.ReceiveReport)
}

// handleAssignReport handles POST /api/v1/reports/{id}/assign
// @Summary Assign a technician
// @Description Admin assigns (or re-assigns) a DIPROSES report to a technician.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body dto.AssignReportRequest true "Technician"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/assign [post]
func (h *Handler) handleAssignReport(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignReportRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	serveTransition(w, r, func(ctx context.Context, actor *domain.Identity, reportID string) (*domain.Report, error) {
		return h.reportService.AssignReport(ctx, actor, reportID, service.AssignReportInput{
			TechnicianID: req.TechnicianID,
		})
	})
}

// handleStartReport handles POST /api/v1/reports/{id}/start
// @Summary Start work
// @Description The assigned technician moves a DIPROSES report to DIKERJAKAN.
// @Tags lifecycle
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/start [post]
func (h *Handler) handleStartReport(w http.ResponseWriter, r *http.Request) {
	serveTransition(w, r, h.reportService.StartReport)
}

// handleResolveReport handles POST /api/v1/reports/{id}/resolve
// @Summary Resolve a report
// @Description The assigned technician moves a DIKERJAKAN report to SELESAI.
// @Tags lifecycle
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/resolve [post]
func (h *Handler) handleResolveReport(w http.ResponseWriter, r *http.Request) {
	serveTransition(w, r, h.reportService.ResolveReport)
}

// handleRejectReport handles POST /api/v1/reports/{id}/reject
// @Summary Reject a report
// @Description Admin rejects a report that is not yet finished. The body is optional.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body dto.RejectReportRequest false "Reason"
// @Success 200 {object} dto.ReportResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/reject [post]
func (h *Handler) handleRejectReport(w http.ResponseWriter, r *http.Request) {
	var req dto.RejectReportRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	serveTransition(w, r, func(ctx context.Context, actor *domain.Identity, reportID string) (*domain.Report, error) {
		return h.reportService.RejectReport(ctx, actor, reportID, req.Note)
	})
}
