package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/repository"
)

// ListReportsInput holds the filters and paging for the general report listing.
type ListReportsInput struct {
	Mode     domain.ReadMode
	Status   string
	Category string
	Created  *DateRange
	Page     int
	Limit    int
}

// ReportPage is one page of reports.
type ReportPage struct {
	Reports []*domain.ReportWithReporter
	Page    Page
}

// HistoryPage is one keyset page of a technician's finished work.
type HistoryPage struct {
	Reports    []*domain.ReportWithReporter
	NextCursor string
}

var (
	activeTaskStatuses = []domain.ReportStatus{domain.ReportStatusProcessing, domain.ReportStatusInProgress}
	historyStatuses    = []domain.ReportStatus{domain.ReportStatusDone, domain.ReportStatusRejected}
)

// GetReport returns a report visible to the actor: its reporter, its assignee or an admin.
func (s *ReportService) GetReport(
	ctx context.Context,
	actor *domain.Identity,
	mode domain.ReadMode,
	reportID string,
) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, mode, reportID)
	if err != nil {
		return nil, err
	}
	if !report.CanBeViewedBy(actor) {
		return nil, fmt.Errorf("%w: report %s is not visible to %s", domain.ErrForbidden, reportID, actor.ID)
	}
	return report, nil
}

// GetReportEvents returns the audit trail of a report visible to the actor, oldest first.
func (s *ReportService) GetReportEvents(
	ctx context.Context,
	actor *domain.Identity,
	mode domain.ReadMode,
	reportID string,
) ([]*domain.ReportEventWithActor, error) {
	if _, err := s.GetReport(ctx, actor, mode, reportID); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByReportID(ctx, mode, reportID)
}

// ListReports lists reports scoped to the actor: residents see their own,
// admins see all, technicians use their task views instead.
func (s *ReportService) ListReports(
	ctx context.Context,
	actor *domain.Identity,
	input ListReportsInput,
) (*ReportPage, error) {
	filters := repository.ReportListFilters{}

	switch actor.Role {
	case domain.RoleUser:
		filters.ReporterID = &actor.ID
	case domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: role %s cannot list reports", domain.ErrForbidden, actor.Role)
	}

	if input.Status != "" {
		status := domain.ReportStatus(strings.ToUpper(input.Status))
		if !status.IsValid() {
			return nil, domain.NewValidationError("status", "is invalid")
		}
		filters.Statuses = []domain.ReportStatus{status}
	}
	if input.Category != "" {
		category := domain.ReportCategory(strings.ToUpper(input.Category))
		if !category.IsValid() {
			return nil, domain.NewValidationError("category", "is invalid")
		}
		filters.Category = &category
	}

	if input.Created != nil {
		filters.CreatedAt = &repository.TimeRange{From: input.Created.From, To: input.Created.To}
	}

	page := normalizePage(input.Page, input.Limit)
	filters.Limit = page.Limit
	filters.Offset = page.Offset()

	reports, total, err := s.reportRepo.List(ctx, input.Mode, filters)
	if err != nil {
		return nil, err
	}

	return &ReportPage{Reports: reports, Page: page.withTotal(total)}, nil
}

// ListTechnicianTasks returns the technician's open assignments (DIPROSES, DIKERJAKAN).
func (s *ReportService) ListTechnicianTasks(
	ctx context.Context,
	actor *domain.Identity,
	mode domain.ReadMode,
) ([]*domain.ReportWithReporter, error) {
	if actor.Role != domain.RoleTechnician {
		return nil, fmt.Errorf("%w: only technicians have tasks", domain.ErrForbidden)
	}
	return s.reportRepo.ListAssigned(ctx, mode, actor.ID, activeTaskStatuses)
}

// ListTechnicianHistory returns the technician's finished assignments (SELESAI, DITOLAK),
// most recently updated first, paged by an opaque cursor.
func (s *ReportService) ListTechnicianHistory(
	ctx context.Context,
	actor *domain.Identity,
	mode domain.ReadMode,
	cursor string,
	limit int,
) (*HistoryPage, error) {
	if actor.Role != domain.RoleTechnician {
		return nil, fmt.Errorf("%w: only technicians have a history", domain.ErrForbidden)
	}

	var after *repository.HistoryCursor
	if cursor != "" {
		c, err := DecodeCursor(cursor)
		if err != nil {
			return nil, domain.NewValidationError("cursor", "is invalid")
		}
		after = c
	}

	limit = normalizeHistoryLimit(limit)

	reports, err := s.reportRepo.ListAssignedAfter(ctx, mode, actor.ID, historyStatuses, after, limit+1)
	if err != nil {
		return nil, err
	}

	page := &HistoryPage{Reports: reports}
	if len(reports) > limit {
		page.Reports = reports[:limit]
		last := page.Reports[limit-1]
		page.NextCursor = EncodeCursor(repository.HistoryCursor{UpdatedAt: last.UpdatedAt, ID: last.ID})
	}
	return page, nil
}

// ListTechnicians returns every identity with role TEKNISI, for the admin assign picker.
func (s *ReportService) ListTechnicians(
	ctx context.Context,
	actor *domain.Identity,
	mode domain.ReadMode,
) ([]*domain.Identity, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can list technicians", domain.ErrForbidden)
	}
	return s.userRepo.ListByRole(ctx, mode, domain.RoleTechnician)
}

// EncodeCursor renders a history cursor as an opaque URL-safe token.
func EncodeCursor(c repository.HistoryCursor) string {
	raw := c.UpdatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.ID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (*repository.HistoryCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil, errors.New("malformed cursor")
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("parse cursor time: %w", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse cursor id: %w", err)
	}
	return &repository.HistoryCursor{UpdatedAt: updatedAt, ID: id}, nil
}
