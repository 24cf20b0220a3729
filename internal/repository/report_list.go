package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mtlprog/dormreport/internal/domain"
)

// ReportListFilters holds all supported filters for report listing.
type ReportListFilters struct {
	ReporterID *string                // Optional: only reports filed by this user
	AssignedTo *string                // Optional: only reports assigned to this technician
	Statuses   []domain.ReportStatus  // Optional: filter by status
	Category   *domain.ReportCategory // Optional: filter by category
	CreatedAt  *TimeRange             // Optional: created_at in [From, To)
	Limit      int                    // Required: page size
	Offset     int                    // Required: page offset
}

// TimeRange is a half-open interval [From, To).
type TimeRange struct {
	From time.Time
	To   time.Time
}

// HistoryCursor is the keyset position of the last row of a history page.
type HistoryCursor struct {
	UpdatedAt time.Time
	ID        string
}

// apply adds the filter predicates to a select builder.
func (f ReportListFilters) apply(qb sq.SelectBuilder) sq.SelectBuilder {
	if f.ReporterID != nil {
		qb = qb.Where(sq.Eq{"r.user_id": *f.ReporterID})
	}
	if f.AssignedTo != nil {
		qb = qb.Where(sq.Eq{"r.assigned_to": *f.AssignedTo})
	}
	if len(f.Statuses) > 0 {
		qb = qb.Where(sq.Eq{"r.status": f.Statuses})
	}
	if f.Category != nil {
		qb = qb.Where(sq.Eq{"r.category": *f.Category})
	}
	if f.CreatedAt != nil {
		qb = qb.Where(sq.GtOrEq{"r.created_at": f.CreatedAt.From}).
			Where(sq.Lt{"r.created_at": f.CreatedAt.To})
	}
	return qb
}

func selectReportsWithReporter() sq.SelectBuilder {
	columns := append(qualify("r", reportColumns), "u.full_name", "u.room_number")
	return psql.Select(columns...).
		From("reports r").
		Join("users u ON u.id = r.user_id")
}

func scanReportsWithReporter(rows pgx.Rows) ([]*domain.ReportWithReporter, error) {
	defer rows.Close()

	reports := make([]*domain.ReportWithReporter, 0)
	for rows.Next() {
		var item domain.ReportWithReporter
		err := rows.Scan(
			&item.ID,
			&item.ReporterID,
			&item.Category,
			&item.Title,
			&item.Description,
			&item.PhotoURL,
			&item.Priority,
			&item.Location,
			&item.Status,
			&item.AssignedTo,
			&item.ReceivedAt,
			&item.StartedAt,
			&item.ResolvedAt,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.ReporterName,
			&item.ReporterRoom,
		)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return reports, nil
}

// List retrieves reports with filters and pagination, newest first.
// Returns the page and the total count matching the filters.
func (r *ReportRepository) List(
	ctx context.Context,
	mode domain.ReadMode,
	filters ReportListFilters,
) ([]*domain.ReportWithReporter, int, error) {
	db := r.router.ForMode(mode)

	query, args, err := filters.apply(selectReportsWithReporter()).
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query reports: %w", err)
	}

	reports, err := scanReportsWithReporter(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := filters.apply(psql.Select("COUNT(*)").From("reports r")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	return reports, total, nil
}

// ListAssigned retrieves every report assigned to a technician in the given statuses,
// most recently updated first.
func (r *ReportRepository) ListAssigned(
	ctx context.Context,
	mode domain.ReadMode,
	technicianID string,
	statuses []domain.ReportStatus,
) ([]*domain.ReportWithReporter, error) {
	filters := ReportListFilters{AssignedTo: &technicianID, Statuses: statuses}

	query, args, err := filters.apply(selectReportsWithReporter()).
		OrderBy("r.updated_at DESC", "r.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListAssigned query: %w", err)
	}

	rows, err := r.router.ForMode(mode).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assigned reports: %w", err)
	}
	return scanReportsWithReporter(rows)
}

// ListAssignedAfter is the keyset-paged variant of ListAssigned. It fetches up to
// limit rows strictly after cursor in (updated_at DESC, id DESC) order.
func (r *ReportRepository) ListAssignedAfter(
	ctx context.Context,
	mode domain.ReadMode,
	technicianID string,
	statuses []domain.ReportStatus,
	cursor *HistoryCursor,
	limit int,
) ([]*domain.ReportWithReporter, error) {
	filters := ReportListFilters{AssignedTo: &technicianID, Statuses: statuses}

	qb := filters.apply(selectReportsWithReporter())
	if cursor != nil {
		qb = qb.Where(sq.Expr("(r.updated_at, r.id) < (?, ?)", cursor.UpdatedAt, cursor.ID))
	}

	query, args, err := qb.
		OrderBy("r.updated_at DESC", "r.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListAssignedAfter query: %w", err)
	}

	rows, err := r.router.ForMode(mode).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query report history: %w", err)
	}
	return scanReportsWithReporter(rows)
}
