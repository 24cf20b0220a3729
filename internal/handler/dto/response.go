package dto

import (
	"time"

	"github.com/mtlprog/dormreport/internal/domain"
)

// ReportResponse represents a report.
type ReportResponse struct {
	ID           string     `json:"id"`
	ReporterID   string     `json:"reporter_id"`
	ReporterName string     `json:"reporter_name,omitempty"`
	ReporterRoom *string    `json:"reporter_room,omitempty"`
	Category     string     `json:"category"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	PhotoURL     *string    `json:"photo_url"`
	Priority     string     `json:"priority"`
	Location     string     `json:"location"`
	Status       string     `json:"status"`
	AssignedTo   *string    `json:"assigned_to"`
	ReceivedAt   *time.Time `json:"received_at"`
	StartedAt    *time.Time `json:"started_at"`
	ResolvedAt   *time.Time `json:"resolved_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewReportResponse converts a domain report.
func NewReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		ReporterID:  r.ReporterID,
		Category:    string(r.Category),
		Title:       r.Title,
		Description: r.Description,
		PhotoURL:    r.PhotoURL,
		Priority:    string(r.Priority),
		Location:    r.Location,
		Status:      string(r.Status),
		AssignedTo:  r.AssignedTo,
		ReceivedAt:  r.ReceivedAt,
		StartedAt:   r.StartedAt,
		ResolvedAt:  r.ResolvedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// NewReportResponses converts reports joined with their reporter.
func NewReportResponses(reports []*domain.ReportWithReporter) []ReportResponse {
	out := make([]ReportResponse, len(reports))
	for i, r := range reports {
		out[i] = NewReportResponse(&r.Report)
		out[i].ReporterName = r.ReporterName
		out[i].ReporterRoom = r.ReporterRoom
	}
	return out
}

// PaginationInfo describes an offset-paged list.
type PaginationInfo struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ReportsListResponse represents the response for GET /reports.
type ReportsListResponse struct {
	Reports    []ReportResponse `json:"reports"`
	Pagination PaginationInfo   `json:"pagination"`
	Mode       string           `json:"mode"`
}

// TasksResponse represents the response for GET /technician/tasks.
type TasksResponse struct {
	Reports []ReportResponse `json:"reports"`
	Mode    string           `json:"mode"`
}

// HistoryResponse represents the response for GET /technician/history.
type HistoryResponse struct {
	Reports    []ReportResponse `json:"reports"`
	NextCursor *string          `json:"next_cursor"`
	Mode       string           `json:"mode"`
}

// ReportEventResponse represents a report event with actor information.
type ReportEventResponse struct {
	ID    string    `json:"id"`
	Type  string    `json:"type"`
	Note  string    `json:"note"`
	At    time.Time `json:"at"`
	Actor ActorInfo `json:"actor"`
}

// ActorInfo identifies who performed an event.
type ActorInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ReportEventsResponse represents the response for GET /reports/{id}/events.
type ReportEventsResponse struct {
	ReportID string                `json:"report_id"`
	Events   []ReportEventResponse `json:"events"`
}

// NewReportEventResponses converts events joined with their actor.
func NewReportEventResponses(events []*domain.ReportEventWithActor) []ReportEventResponse {
	out := make([]ReportEventResponse, len(events))
	for i, e := range events {
		out[i] = ReportEventResponse{
			ID:   e.ID,
			Type: string(e.Type),
			Note: e.Note,
			At:   e.At,
			Actor: ActorInfo{
				ID:    e.ActorID,
				Name:  e.ActorName,
				Email: e.ActorEmail,
				Role:  string(e.ActorRole),
			},
		}
	}
	return out
}

// IdentityResponse represents a user.
type IdentityResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	RoomNumber *string `json:"room_number"`
}

// NewIdentityResponse converts a domain identity.
func NewIdentityResponse(u *domain.Identity) IdentityResponse {
	return IdentityResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Role:       string(u.Role),
		RoomNumber: u.RoomNumber,
	}
}

// TechniciansResponse represents the response for GET /admin/technicians.
type TechniciansResponse struct {
	Technicians []IdentityResponse `json:"technicians"`
}

// RangeInfo is the half-open UTC interval a statistic covers.
type RangeInfo struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DayCountInfo is the number of reports created on one day.
type DayCountInfo struct {
	Day   string `json:"day"`
	Total int    `json:"total"`
}

// DurationSummary holds average durations in milliseconds and whole minutes.
type DurationSummary struct {
	AvgResponseMs  int64 `json:"avg_response_ms"`
	AvgWorkMs      int64 `json:"avg_work_ms"`
	AvgTotalMs     int64 `json:"avg_total_ms"`
	AvgResponseMin int64 `json:"avg_response_min"`
	AvgWorkMin     int64 `json:"avg_work_min"`
	AvgTotalMin    int64 `json:"avg_total_min"`
}

// StatsResponse represents the response for GET /stats.
type StatsResponse struct {
	Mode       string          `json:"mode"`
	Range      RangeInfo       `json:"range"`
	PerStatus  map[string]int  `json:"per_status"`
	PerDay     []DayCountInfo  `json:"per_day"`
	Total      int             `json:"total"`
	Finished   int             `json:"finished"`
	Rejected   int             `json:"rejected"`
	Received   int             `json:"received"`
	InProgress int             `json:"in_progress"`
	Durations  DurationSummary `json:"durations"`
}

// TimingInfo is one report's timestamps with its individual durations.
type TimingInfo struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ReceivedAt *time.Time `json:"received_at"`
	StartedAt  *time.Time `json:"started_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
	ResponseMs *int64     `json:"response_ms"`
	WorkMs     *int64     `json:"work_ms"`
	TotalMs    *int64     `json:"total_ms"`
}

// TimingsResponse represents the response for GET /admin/timings.
type TimingsResponse struct {
	Range   RangeInfo    `json:"range"`
	Reports []TimingInfo `json:"reports"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

// HealthResponse represents the response for GET /healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	Secondary bool   `json:"secondary"`
}
