package handler

import (
	"net/http"

	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/handler/dto"
)

// handleTechnicianTasks handles GET /api/v1/technician/tasks
// @Summary Open assignments
// @Description Reports assigned to the calling technician in DIPROSES or DIKERJAKAN.
// @Tags technician
// @Produce json
// @Param mode query string false "Read mode (strong, eventual, weak)" default(strong)
// @Success 200 {object} dto.TasksResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /technician/tasks [get]
func (h *Handler) handleTechnicianTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	mode := readMode(r, domain.ReadModeStrong)

	reports, err := h.reportService.ListTechnicianTasks(r.Context(), actor, mode)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TasksResponse{
		Reports: dto.NewReportResponses(reports),
		Mode:    string(mode),
	})
}

// handleTechnicianHistory handles GET /api/v1/technician/history
// @Summary Finished assignments
// @Description Reports assigned to the calling technician in SELESAI or DITOLAK, newest first.
// @Tags technician
// @Produce json
// @Param mode query string false "Read mode (strong, eventual, weak)" default(strong)
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 50)" default(20)
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /technician/history [get]
func (h *Handler) handleTechnicianHistory(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	mode := readMode(r, domain.ReadModeStrong)

	page, err := h.reportService.ListTechnicianHistory(
		r.Context(), actor, mode, r.URL.Query().Get("cursor"), queryInt(r, "limit"),
	)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := dto.HistoryResponse{
		Reports: dto.NewReportResponses(page.Reports),
		Mode:    string(mode),
	}
	if page.NextCursor != "" {
		resp.NextCursor = &page.NextCursor
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleListTechnicians handles GET /api/v1/admin/technicians
// @Summary List technicians
// @Description Identities with role TEKNISI, for picking an assignee.
// @Tags admin
// @Produce json
// @Param mode query string false "Read mode (strong, eventual, weak)" default(strong)
// @Success 200 {object} dto.TechniciansResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/technicians [get]
func (h *Handler) handleListTechnicians(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	technicians, err := h.reportService.ListTechnicians(r.Context(), actor, readMode(r, domain.ReadModeStrong))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	out := make([]dto.IdentityResponse, len(technicians))
	for i, t := range technicians {
		out[i] = dto.NewIdentityResponse(t)
	}

	respondJSON(w, http.StatusOK, dto.TechniciansResponse{Technicians: out})
}
