package handler

import (
	"net/http"

	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/handler/dto"
	"github.com/mtlprog/dormreport/internal/service"
)

// handleCreateReport handles POST /api/v1/reports
// @Summary File a report
// @Description Resident files a new facility report. Status starts at BARU.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.CreateReportRequest true "Report details"
// @Success 201 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports [post]
func (h *Handler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	report, err := h.reportService.CreateReport(r.Context(), actor, service.CreateReportInput{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Priority:    req.Priority,
		Location:    req.Location,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewReportResponse(report))
}

// handleListReports handles GET /api/v1/reports
// @Summary List reports
// @Description Residents see their own reports, admins see all.
// @Tags reports
// @Produce json
// @Param mode query string false "Read mode (strong, eventual, weak)" default(strong)
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Param from query string false "Created on or after this day (YYYY-MM-DD)"
// @Param to query string false "Created on or before this day (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (5-50)" default(10)
// @Success 200 {object} dto.ReportsListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	mode := readMode(r, domain.ReadModeStrong)
	query := r.URL.Query()

	var created *service.DateRange
	if query.Get("from") != "" || query.Get("to") != "" {
		rng, err := parseDateRange(r)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		created = &rng
	}

	page, err := h.reportService.ListReports(r.Context(), actor, service.ListReportsInput{
		Mode:     mode,
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Created:  created,
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ReportsListResponse{
		Reports: dto.NewReportResponses(page.Reports),
		Pagination: dto.PaginationInfo{
			Page:       page.Page.Page,
			Limit:      page.Page.Limit,
			Total:      page.Page.Total,
			TotalPages: page.Page.TotalPages,
			HasNext:    page.Page.HasNext,
			HasPrev:    page.Page.HasPrev,
		},
		Mode: string(mode),
	})
}

// handleGetReport handles GET /api/v1/reports/{id}
// @Summary Get a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Param mode query string false "Read mode (strong, eventual, weak)" default(strong)
// @Success 200 {object} dto.ReportResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	reportID, ok := extractReportID(w, r)
	if !ok {
		return
	}

	report, err := h.reportService.GetReport(r.Context(), actor, readMode(r, domain.ReadModeStrong), reportID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewReportResponse(report))
}

// handleEditReport handles PATCH /api/v1/reports/{id}
// @Summary Edit a report
// @Description The reporter may change fields while the report is still BARU.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body dto.EditReportRequest true "Fields to change"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id} [patch]
func (h *Handler) handleEditReport(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	reportID, ok := extractReportID(w, r)
	if !ok {
		return
	}

	var req dto.EditReportRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	report, err := h.reportService.EditReport(r.Context(), actor, reportID, service.EditReportInput{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Priority:    req.Priority,
		Location:    req.Location,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewReportResponse(report))
}

// handleDeleteReport handles DELETE /api/v1/reports/{id}
// @Summary Delete a report
// @Description The reporter may delete while BARU; admins may delete in any status.
// @Tags reports
// @Param id path string true "Report ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *Handler) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	reportID, ok := extractReportID(w, r)
	if !ok {
		return
	}

	if err := h.reportService.DeleteReport(r.Context(), actor, reportID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleGetReportEvents handles GET /api/v1/reports/{id}/events
// @Summary Get report history
// @Description Returns the audit trail of a report, oldest first.
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Param mode query string false "Read mode (strong, eventual, weak)" default(strong)
// @Success 200 {object} dto.ReportEventsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/events [get]
func (h *Handler) handleGetReportEvents(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	reportID, ok := extractReportID(w, r)
	if !ok {
		return
	}

	events, err := h.reportService.GetReportEvents(r.Context(), actor, readMode(r, domain.ReadModeStrong), reportID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ReportEventsResponse{
		ReportID: reportID,
		Events:   dto.NewReportEventResponses(events),
	})
}
