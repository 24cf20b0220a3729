package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mtlprog/dormreport/internal/database"
	"github.com/mtlprog/dormreport/internal/domain"
)

// StatsRepository runs the read-only aggregation queries behind the admin dashboard.
type StatsRepository struct {
	router *database.Router
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(router *database.Router) *StatsRepository {
	return &StatsRepository{router: router}
}

// DayCount is the number of reports created on one UTC calendar day.
type DayCount struct {
	Day   string
	Count int
}

// ReportTiming holds the workflow timestamps of one report.
type ReportTiming struct {
	ID         string
	Title      string
	Status     domain.ReportStatus
	CreatedAt  time.Time
	ReceivedAt *time.Time
	StartedAt  *time.Time
	ResolvedAt *time.Time
}

// CountByStatus counts reports created in [from, to) per status.
// Statuses with no reports are absent from the map.
func (r *StatsRepository) CountByStatus(
	ctx context.Context,
	mode domain.ReadMode,
	from, to time.Time,
) (map[domain.ReportStatus]int, error) {
	rows, err := r.router.ForMode(mode).Query(ctx, `
		SELECT status, COUNT(*)
		FROM reports
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY status
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query reports by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ReportStatus]int)
	for rows.Next() {
		var status domain.ReportStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status rows: %w", err)
	}

	return counts, nil
}

// CountByDay counts reports created in [from, to) per UTC day, in day order.
// Days without reports are absent.
func (r *StatsRepository) CountByDay(
	ctx context.Context,
	mode domain.ReadMode,
	from, to time.Time,
) ([]DayCount, error) {
	rows, err := r.router.ForMode(mode).Query(ctx, `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM reports
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY day
		ORDER BY day
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query reports by day: %w", err)
	}
	defer rows.Close()

	var days []DayCount
	for rows.Next() {
		var d DayCount
		if err := rows.Scan(&d.Day, &d.Count); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day rows: %w", err)
	}

	return days, nil
}

// Timings returns the workflow timestamps of reports created in [from, to),
// newest first. A limit of 0 returns every row.
func (r *StatsRepository) Timings(
	ctx context.Context,
	mode domain.ReadMode,
	from, to time.Time,
	limit, offset int,
) ([]ReportTiming, error) {
	qb := psql.
		Select("id", "title", "status", "created_at", "received_at", "started_at", "resolved_at").
		From("reports").
		Where("created_at >= ? AND created_at < ?", from, to).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		qb = qb.Limit(uint64(limit)).Offset(uint64(offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Timings query: %w", err)
	}

	rows, err := r.router.ForMode(mode).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query report timings: %w", err)
	}
	defer rows.Close()

	var timings []ReportTiming
	for rows.Next() {
		var t ReportTiming
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.CreatedAt, &t.ReceivedAt, &t.StartedAt, &t.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan report timing: %w", err)
		}
		timings = append(timings, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timing rows: %w", err)
	}

	return timings, nil
}
