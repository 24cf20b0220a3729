package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mtlprog/dormreport/internal/database"
	"github.com/mtlprog/dormreport/internal/domain"
)

// ReportEventRepository handles database operations for report events.
type ReportEventRepository struct {
	router *database.Router
}

// NewReportEventRepository creates a new ReportEventRepository.
func NewReportEventRepository(router *database.Router) *ReportEventRepository {
	return &ReportEventRepository{router: router}
}

// Create appends an event within the transition's transaction.
// A zero event.At is stamped with the statement time; callers pass the report's
// updated_at so the event and the row change share one instant.
func (r *ReportEventRepository) Create(
	ctx context.Context,
	tx pgx.Tx,
	event *domain.ReportEvent,
) error {
	var at interface{} = sq.Expr("statement_timestamp()")
	if !event.At.IsZero() {
		at = event.At
	}

	query, args, err := psql.
		Insert("report_events").
		Columns("report_id", "actor_id", "type", "note", "at").
		Values(event.ReportID, event.ActorID, event.Type, event.Note, at).
		Suffix("RETURNING id, at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&event.ID, &event.At)
	if err != nil {
		return fmt.Errorf("create report event: %w", err)
	}

	return nil
}

// GetByReportID retrieves all events for a report in chronological order,
// joined with each actor's identity.
func (r *ReportEventRepository) GetByReportID(
	ctx context.Context,
	mode domain.ReadMode,
	reportID string,
) ([]*domain.ReportEventWithActor, error) {
	query, args, err := psql.
		Select(
			"e.id", "e.report_id", "e.actor_id", "e.type", "e.note", "e.at",
			"u.full_name", "u.email", "u.role",
		).
		From("report_events e").
		Join("users u ON u.id = e.actor_id").
		Where(sq.Eq{"e.report_id": reportID}).
		OrderBy("e.at ASC", "e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.router.ForMode(mode).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query report events: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.ReportEventWithActor, 0)
	for rows.Next() {
		var event domain.ReportEventWithActor
		err := rows.Scan(
			&event.ID,
			&event.ReportID,
			&event.ActorID,
			&event.Type,
			&event.Note,
			&event.At,
			&event.ActorName,
			&event.ActorEmail,
			&event.ActorRole,
		)
		if err != nil {
			return nil, fmt.Errorf("scan report event: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return events, nil
}
