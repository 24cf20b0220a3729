package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	_ "github.com/mtlprog/dormreport/docs" // Register API docs
	"github.com/mtlprog/dormreport/internal/database"
	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/handler/dto"
	"github.com/mtlprog/dormreport/internal/middleware"
	"github.com/mtlprog/dormreport/internal/notify"
	"github.com/mtlprog/dormreport/internal/repository"
	"github.com/mtlprog/dormreport/internal/service"
	"github.com/mtlprog/dormreport/internal/static"
	httpSwagger "github.com/swaggo/http-swagger"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	router         *database.Router
	reportService  *service.ReportService
	statsService   *service.StatsService
	authMiddleware *middleware.AuthMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(router *database.Router, jwtSecret string, notifier *notify.Notifier) *Handler {
	// Create repositories
	reportRepo := repository.NewReportRepository(router)
	eventRepo := repository.NewReportEventRepository(router)
	userRepo := repository.NewUserRepository(router)
	statsRepo := repository.NewStatsRepository(router)

	// Create services
	reportService := service.NewReportService(router, reportRepo, eventRepo, userRepo, notifier)
	statsService := service.NewStatsService(statsRepo)

	return &Handler{
		router:         router,
		reportService:  reportService,
		statsService:   statsService,
		authMiddleware: middleware.NewAuthMiddleware(jwtSecret, userRepo),
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// API guide
	mux.HandleFunc("GET /guide.md", h.handleGuideMd)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	auth := func(fn http.HandlerFunc) http.Handler {
		return h.authMiddleware.Authenticate(fn)
	}

	// API v1 routes with authentication
	mux.Handle("GET /api/v1/me", auth(h.handleMe))

	mux.Handle("POST /api/v1/reports", auth(h.handleCreateReport))
	mux.Handle("GET /api/v1/reports", auth(h.handleListReports))
	mux.Handle("GET /api/v1/reports/{id}", auth(h.handleGetReport))
	mux.Handle("PATCH /api/v1/reports/{id}", auth(h.handleEditReport))
	mux.Handle("DELETE /api/v1/reports/{id}", auth(h.handleDeleteReport))
	mux.Handle("GET /api/v1/reports/{id}/events", auth(h.handleGetReportEvents))

	mux.Handle("POST /api/v1/reports/{id}/receive", auth(h.handleReceiveReport))
	mux.Handle("POST /api/v1/reports/{id}/assign", auth(h.handleAssignReport))
	mux.Handle("POST /api/v1/reports/{id}/start", auth(h.handleStartReport))
	mux.Handle("POST /api/v1/reports/{id}/resolve", auth(h.handleResolveReport))
	mux.Handle("POST /api/v1/reports/{id}/reject", auth(h.handleRejectReport))

	mux.Handle("GET /api/v1/technician/tasks", auth(h.handleTechnicianTasks))
	mux.Handle("GET /api/v1/technician/history", auth(h.handleTechnicianHistory))

	mux.Handle("GET /api/v1/stats", auth(h.handleGetStats))
	mux.Handle("GET /api/v1/admin/timings", auth(h.handleGetTimings))
	mux.Handle("GET /api/v1/admin/technicians", auth(h.handleListTechnicians))
}

// handleHealthz returns 200 OK if the primary store is reachable.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /healthz [get]
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "database unavailable")
		return
	}

	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Secondary: h.router.HasSecondary()})
}

// handleGuideMd serves the embedded API guide.
func (h *Handler) handleGuideMd(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(static.GuideMd)); err != nil {
		slog.Error("failed to write guide", "error", err)
	}
}

// handleMe returns the resolved identity of the caller.
// @Summary Current identity
// @Tags auth
// @Produce json
// @Success 200 {object} dto.IdentityResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, dto.NewIdentityResponse(actor))
}

// Ping checks if the primary store is reachable.
func (h *Handler) Ping(ctx context.Context) error {
	return h.router.Primary().Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a service error to its HTTP response.
func respondDomainError(w http.ResponseWriter, err error) {
	status, resp := dto.ErrorResponseFor(err)
	respondJSON(w, status, resp)
}

// requireIdentity returns the authenticated caller or writes 401.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*domain.Identity, bool) {
	actor, err := middleware.GetIdentityFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
		return nil, false
	}
	return actor, true
}

// extractReportID extracts and validates report ID from path parameter.
// Returns (reportID, true) if valid, ("", false) if invalid (error already sent to client).
func extractReportID(w http.ResponseWriter, r *http.Request) (string, bool) {
	reportID := r.PathValue("id")
	if reportID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "report id is required")
		return "", false
	}

	if _, err := uuid.Parse(reportID); err != nil {
		respondError(w, http.StatusNotFound, "REPORT_NOT_FOUND", "report not found")
		return "", false
	}

	return reportID, true
}

// decodeJSON parses the request body into dst. An empty body is accepted when optional is true.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, optional bool) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
	return false
}

// readMode parses the mode query parameter.
func readMode(r *http.Request, def domain.ReadMode) domain.ReadMode {
	return domain.ParseReadMode(r.URL.Query().Get("mode"), def)
}

// queryInt parses an integer query parameter, returning 0 when absent or malformed.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
