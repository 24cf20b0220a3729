package handler

import (
	"net/http"
	"time"

	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/handler/dto"
	"github.com/mtlprog/dormreport/internal/service"
)

// parseDateRange reads the from/to query parameters (inclusive YYYY-MM-DD days).
func parseDateRange(r *http.Request) (service.DateRange, error) {
	query := r.URL.Query()

	first, err := service.ParseDay("from", query.Get("from"))
	if err != nil {
		return service.DateRange{}, err
	}
	last, err := service.ParseDay("to", query.Get("to"))
	if err != nil {
		return service.DateRange{}, err
	}

	return service.NewDateRange(first, last, time.Now())
}

// handleGetStats handles GET /api/v1/stats
// @Summary Dashboard statistics
// @Description Status counts, per-day counts and average durations for reports created in the range.
// @Tags stats
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD), default six days ago"
// @Param to query string false "Last day (YYYY-MM-DD), default today"
// @Param mode query string false "Read mode (strong, eventual, weak)" default(weak)
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /stats [get]
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	rng, err := parseDateRange(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	agg, err := h.statsService.GetAggregates(r.Context(), actor, readMode(r, domain.ReadModeWeak), rng)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	perStatus := make(map[string]int, len(agg.ByStatus))
	for status, count := range agg.ByStatus {
		perStatus[string(status)] = count
	}

	perDay := make([]dto.DayCountInfo, len(agg.ByDay))
	for i, d := range agg.ByDay {
		perDay[i] = dto.DayCountInfo{Day: d.Day, Total: d.Count}
	}

	respondJSON(w, http.StatusOK, dto.StatsResponse{
		Mode:       string(agg.Mode),
		Range:      dto.RangeInfo{From: agg.Range.From, To: agg.Range.To},
		PerStatus:  perStatus,
		PerDay:     perDay,
		Total:      agg.Total,
		Finished:   agg.Finished,
		Rejected:   agg.Rejected,
		Received:   agg.Received,
		InProgress: agg.InProgress,
		Durations: dto.DurationSummary{
			AvgResponseMs:  agg.Durations.AvgResponseMs,
			AvgWorkMs:      agg.Durations.AvgWorkMs,
			AvgTotalMs:     agg.Durations.AvgTotalMs,
			AvgResponseMin: msToMinutes(agg.Durations.AvgResponseMs),
			AvgWorkMin:     msToMinutes(agg.Durations.AvgWorkMs),
			AvgTotalMin:    msToMinutes(agg.Durations.AvgTotalMs),
		},
	})
}

// handleGetTimings handles GET /api/v1/admin/timings
// @Summary Per-report timing details
// @Tags stats
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param mode query string false "Read mode (strong, eventual, weak)" default(weak)
// @Param limit query int false "Page size (10-200)" default(50)
// @Param offset query int false "Row offset" default(0)
// @Success 200 {object} dto.TimingsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/timings [get]
func (h *Handler) handleGetTimings(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	rng, err := parseDateRange(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	page, err := h.statsService.ListTimings(
		r.Context(), actor, readMode(r, domain.ReadModeWeak), rng,
		queryInt(r, "limit"), queryInt(r, "offset"),
	)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	rows := make([]dto.TimingInfo, len(page.Rows))
	for i, t := range page.Rows {
		rows[i] = dto.TimingInfo{
			ID:         t.ID,
			Title:      t.Title,
			Status:     string(t.Status),
			CreatedAt:  t.CreatedAt,
			ReceivedAt: t.ReceivedAt,
			StartedAt:  t.StartedAt,
			ResolvedAt: t.ResolvedAt,
			ResponseMs: t.ResponseMs,
			WorkMs:     t.WorkMs,
			TotalMs:    t.TotalMs,
		}
	}

	respondJSON(w, http.StatusOK, dto.TimingsResponse{
		Range:   dto.RangeInfo{From: page.Range.From, To: page.Range.To},
		Reports: rows,
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
}

func msToMinutes(ms int64) int64 {
	return (ms + 30_000) / 60_000
}
