package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mtlprog/dormreport/internal/database"
	"github.com/mtlprog/dormreport/internal/domain"
)

// reportColumns is the shared list of columns for report queries.
var reportColumns = []string{
	"id", "user_id", "category", "title", "description", "photo_url",
	"priority", "location", "status", "assigned_to",
	"received_at", "started_at", "resolved_at", "created_at", "updated_at",
}

// ReportRepository handles database operations for reports.
type ReportRepository struct {
	router *database.Router
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(router *database.Router) *ReportRepository {
	return &ReportRepository{router: router}
}

// scanReport scans a single row into a Report struct.
func scanReport(row pgx.Row) (*domain.Report, error) {
	var report domain.Report
	err := row.Scan(
		&report.ID,
		&report.ReporterID,
		&report.Category,
		&report.Title,
		&report.Description,
		&report.PhotoURL,
		&report.Priority,
		&report.Location,
		&report.Status,
		&report.AssignedTo,
		&report.ReceivedAt,
		&report.StartedAt,
		&report.ResolvedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("scan report: %w", err)
	}
	return &report, nil
}

// GetByID retrieves a report by ID from the store chosen by mode.
func (r *ReportRepository) GetByID(ctx context.Context, mode domain.ReadMode, reportID string) (*domain.Report, error) {
	query, args, err := psql.
		Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"id": reportID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for report: %w", err)
	}

	return scanReport(r.router.ForMode(mode).QueryRow(ctx, query, args...))
}

// GetByIDTx retrieves a report by ID within a transaction.
func (r *ReportRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, reportID string) (*domain.Report, error) {
	query, args, err := psql.
		Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"id": reportID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDTx query for report %s: %w", reportID, err)
	}

	return scanReport(tx.QueryRow(ctx, query, args...))
}

// Create inserts a new report within a transaction.
// Returns the report with ID, Status, CreatedAt and UpdatedAt populated.
func (r *ReportRepository) Create(ctx context.Context, tx pgx.Tx, report *domain.Report) (*domain.Report, error) {
	query, args, err := psql.
		Insert("reports").
		Columns(
			"user_id", "category", "title", "description", "photo_url",
			"priority", "location", "status",
		).
		Values(
			report.ReporterID,
			report.Category,
			report.Title,
			report.Description,
			report.PhotoURL,
			report.Priority,
			report.Location,
			domain.ReportStatusNew,
		).
		Suffix("RETURNING id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for report: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&report.ID, &report.Status, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	return report, nil
}

// ReportChange describes a conditional update driven by a transition rule.
type ReportChange struct {
	Rule    domain.TransitionRule
	ActorID string
	// AssignTo sets assigned_to when non-nil.
	AssignTo *string
	// Fields holds column values for an edit.
	Fields map[string]any
}

// stampColumn maps a rule's timestamp to its column.
func stampColumn(s domain.Stamp) string {
	switch s {
	case domain.StampReceived:
		return "received_at"
	case domain.StampStarted:
		return "started_at"
	case domain.StampResolved:
		return "resolved_at"
	default:
		return ""
	}
}

// ownershipPredicate restricts a write to rows the actor owns under the rule.
func ownershipPredicate(rule domain.TransitionRule, actorID string) sq.Sqlizer {
	switch rule.Ownership {
	case domain.OwnershipAssignee:
		return sq.Eq{"assigned_to": actorID}
	case domain.OwnershipReporter:
		return sq.Eq{"user_id": actorID}
	default:
		return nil
	}
}

// Apply performs a compare-and-swap update: the row changes only if it still has
// one of the rule's source statuses and satisfies its ownership predicate.
// Returns ErrConditionNotMet if nothing matched.
func (r *ReportRepository) Apply(
	ctx context.Context,
	tx pgx.Tx,
	reportID string,
	change ReportChange,
) (*domain.Report, error) {
	qb := psql.
		Update("reports").
		Set("updated_at", sq.Expr("statement_timestamp()")).
		Where(sq.Eq{
			"id":     reportID,
			"status": change.Rule.From,
		})

	if change.Rule.ChangesStatus() {
		qb = qb.Set("status", change.Rule.To)
	}
	if col := stampColumn(change.Rule.Stamp); col != "" {
		qb = qb.Set(col, sq.Expr("statement_timestamp()"))
	}
	if change.AssignTo != nil {
		qb = qb.Set("assigned_to", *change.AssignTo)
	}
	if len(change.Fields) > 0 {
		qb = qb.SetMap(change.Fields)
	}
	if pred := ownershipPredicate(change.Rule, change.ActorID); pred != nil {
		qb = qb.Where(pred)
	}

	query, args, err := qb.
		Suffix("RETURNING " + strings.Join(reportColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Apply query for report %s: %w", reportID, err)
	}

	report, err := scanReport(tx.QueryRow(ctx, query, args...))
	if errors.Is(err, domain.ErrReportNotFound) {
		return nil, ErrConditionNotMet
	}
	return report, err
}

// Delete removes a report under the same conditions as Apply.
// Events are removed by the foreign key cascade.
func (r *ReportRepository) Delete(
	ctx context.Context,
	tx pgx.Tx,
	reportID string,
	rule domain.TransitionRule,
	actorID string,
) error {
	qb := psql.
		Delete("reports").
		Where(sq.Eq{
			"id":     reportID,
			"status": rule.From,
		})
	if pred := ownershipPredicate(rule, actorID); pred != nil {
		qb = qb.Where(pred)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for report %s: %w", reportID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConditionNotMet
	}
	return nil
}
