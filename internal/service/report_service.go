package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mtlprog/dormreport/internal/database"
	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/notify"
	"github.com/mtlprog/dormreport/internal/repository"
)

// ReportService coordinates report operations and lifecycle transitions.
//
// Every transition runs in one transaction on the primary store: a
// compare-and-swap update of the report row plus the event row it produces.
type ReportService struct {
	router     *database.Router
	reportRepo *repository.ReportRepository
	eventRepo  *repository.ReportEventRepository
	userRepo   *repository.UserRepository
	notifier   *notify.Notifier
	validator  *InputValidator
}

// NewReportService creates a new ReportService.
func NewReportService(
	router *database.Router,
	reportRepo *repository.ReportRepository,
	eventRepo *repository.ReportEventRepository,
	userRepo *repository.UserRepository,
	notifier *notify.Notifier,
) *ReportService {
	if notifier == nil {
		notifier = notify.New(nil)
	}
	return &ReportService{
		router:     router,
		reportRepo: reportRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		validator:  NewInputValidator(),
	}
}

// CreateReportInput is the payload for filing a report.
type CreateReportInput struct {
	Category    string `json:"category" validate:"required,oneof=AIR LISTRIK WIFI KEBERSIHAN FASILITAS_UMUM LAINNYA"`
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=5,max=2000"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url,max=500"`
	Priority    string `json:"priority" validate:"omitempty,oneof=RENDAH SEDANG TINGGI"`
	Location    string `json:"location" validate:"omitempty,max=100"`
}

func (in *CreateReportInput) normalize() {
	in.Category = strings.TrimSpace(in.Category)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.PhotoURL = strings.TrimSpace(in.PhotoURL)
	in.Priority = strings.TrimSpace(in.Priority)
	in.Location = strings.TrimSpace(in.Location)
}

// EditReportInput holds the fields a reporter may change while the report is BARU.
// Nil fields are left untouched.
type EditReportInput struct {
	Category    *string `json:"category" validate:"omitnil,oneof=AIR LISTRIK WIFI KEBERSIHAN FASILITAS_UMUM LAINNYA"`
	Title       *string `json:"title" validate:"omitnil,min=3,max=200"`
	Description *string `json:"description" validate:"omitnil,min=5,max=2000"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,url,max=500"`
	Priority    *string `json:"priority" validate:"omitnil,oneof=RENDAH SEDANG TINGGI"`
	Location    *string `json:"location" validate:"omitnil,min=1,max=100"`
}

// fields maps the non-nil inputs to report columns.
func (in *EditReportInput) fields() map[string]any {
	fields := make(map[string]any)
	set := func(column string, v *string) {
		if v != nil {
			trimmed := strings.TrimSpace(*v)
			*v = trimmed
			fields[column] = trimmed
		}
	}
	set("category", in.Category)
	set("title", in.Title)
	set("description", in.Description)
	set("priority", in.Priority)
	set("location", in.Location)
	if in.PhotoURL != nil {
		url := strings.TrimSpace(*in.PhotoURL)
		*in.PhotoURL = url
		if url == "" {
			fields["photo_url"] = nil
		} else {
			fields["photo_url"] = url
		}
	}
	return fields
}

// AssignReportInput names the technician a report is handed to.
type AssignReportInput struct {
	TechnicianID string `json:"technician_id" validate:"required,uuid"`
}

// transitionArgs carries per-transition extras into the shared transition path.
type transitionArgs struct {
	assignTo *string
	fields   map[string]any
	note     string
}

// CreateReport implements the create operation: a USER files a new report in status BARU.
func (s *ReportService) CreateReport(
	ctx context.Context,
	actor *domain.Identity,
	input CreateReportInput,
) (*domain.Report, error) {
	if actor.Role != domain.RoleUser {
		return nil, fmt.Errorf("%w: only residents can file reports", domain.ErrForbidden)
	}

	input.normalize()
	if err := s.validator.Struct(&input); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ReporterID:  actor.ID,
		Category:    domain.ReportCategory(input.Category),
		Title:       input.Title,
		Description: input.Description,
		Priority:    domain.ReportPriority(input.Priority),
		Location:    input.Location,
	}
	if report.Priority == "" {
		report.Priority = domain.PriorityMedium
	}
	if input.PhotoURL != "" {
		report.PhotoURL = &input.PhotoURL
	}
	if report.Location == "" {
		report.Location = domain.DefaultLocation
		if actor.RoomNumber != nil && strings.TrimSpace(*actor.RoomNumber) != "" {
			report.Location = strings.TrimSpace(*actor.RoomNumber)
		}
	}

	tx, err := s.router.Primary().Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	report, err = s.reportRepo.Create(ctx, tx, report)
	if err != nil {
		return nil, err
	}

	event := &domain.ReportEvent{
		ReportID: report.ID,
		ActorID:  actor.ID,
		Type:     domain.EventTypeReported,
		Note:     "Penghuni membuat laporan.",
		At:       report.CreatedAt,
	}

	if err := s.createEventAndCommit(ctx, tx, event); err != nil {
		return nil, err
	}

	slog.Info("report created",
		"report_id", report.ID,
		"actor_id", actor.ID,
		"event_id", event.ID,
	)

	s.notifier.Dispatch(ctx, notify.NewMessage(event, report.Status))

	return report, nil
}

// ReceiveReport implements the receive operation: ADMIN moves BARU to DIPROSES.
func (s *ReportService) ReceiveReport(ctx context.Context, actor *domain.Identity, reportID string) (*domain.Report, error) {
	return s.transition(ctx, actor, reportID, domain.TransitionReceive, transitionArgs{})
}

// AssignReport implements the assign operation: ADMIN hands a DIPROSES report to a technician.
// Re-assignment while DIPROSES is allowed.
func (s *ReportService) AssignReport(
	ctx context.Context,
	actor *domain.Identity,
	reportID string,
	input AssignReportInput,
) (*domain.Report, error) {
	input.TechnicianID = strings.TrimSpace(input.TechnicianID)
	if err := s.validator.Struct(&input); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, reportID, domain.TransitionAssign, transitionArgs{
		assignTo: &input.TechnicianID,
		note:     input.TechnicianID,
	})
}

// StartReport implements the start operation: the assigned technician moves DIPROSES to DIKERJAKAN.
func (s *ReportService) StartReport(ctx context.Context, actor *domain.Identity, reportID string) (*domain.Report, error) {
	return s.transition(ctx, actor, reportID, domain.TransitionStart, transitionArgs{})
}

// ResolveReport implements the resolve operation: the assigned technician moves DIKERJAKAN to SELESAI.
func (s *ReportService) ResolveReport(ctx context.Context, actor *domain.Identity, reportID string) (*domain.Report, error) {
	return s.transition(ctx, actor, reportID, domain.TransitionResolve, transitionArgs{})
}

// RejectReport implements the reject operation: ADMIN moves any non-terminal report to DITOLAK.
// The assignee, if any, is kept.
func (s *ReportService) RejectReport(
	ctx context.Context,
	actor *domain.Identity,
	reportID string,
	note string,
) (*domain.Report, error) {
	if len(note) > 500 {
		return nil, domain.NewValidationError("note", "must be at most 500 characters")
	}
	return s.transition(ctx, actor, reportID, domain.TransitionReject, transitionArgs{note: note})
}

// EditReport implements the edit operation: the reporter changes fields while the report is BARU.
func (s *ReportService) EditReport(
	ctx context.Context,
	actor *domain.Identity,
	reportID string,
	input EditReportInput,
) (*domain.Report, error) {
	fields := input.fields()
	if len(fields) == 0 {
		return nil, domain.NewValidationError("body", "no fields to update")
	}
	if err := s.validator.Struct(&input); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, reportID, domain.TransitionEdit, transitionArgs{fields: fields})
}

// DeleteReport implements the delete operation: the reporter while BARU, or any ADMIN.
func (s *ReportService) DeleteReport(ctx context.Context, actor *domain.Identity, reportID string) error {
	rule, err := domain.LookupTransition(domain.TransitionDelete, actor.Role)
	if err != nil {
		return err
	}

	tx, err := s.router.Primary().Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	err = s.reportRepo.Delete(ctx, tx, reportID, rule, actor.ID)
	if errors.Is(err, repository.ErrConditionNotMet) {
		return s.classify(ctx, tx, rule, reportID, actor.ID)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("report deleted",
		"report_id", reportID,
		"actor_id", actor.ID,
		"role", actor.Role,
	)

	return nil
}

// transition applies one rule of the lifecycle table atomically.
func (s *ReportService) transition(
	ctx context.Context,
	actor *domain.Identity,
	reportID string,
	t domain.Transition,
	args transitionArgs,
) (*domain.Report, error) {
	rule, err := domain.LookupTransition(t, actor.Role)
	if err != nil {
		return nil, err
	}

	tx, err := s.router.Primary().Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	if args.assignTo != nil {
		if err := s.checkTechnician(ctx, tx, *args.assignTo); err != nil {
			return nil, err
		}
	}

	report, err := s.reportRepo.Apply(ctx, tx, reportID, repository.ReportChange{
		Rule:     rule,
		ActorID:  actor.ID,
		AssignTo: args.assignTo,
		Fields:   args.fields,
	})
	if errors.Is(err, repository.ErrConditionNotMet) {
		return nil, s.classify(ctx, tx, rule, reportID, actor.ID)
	}
	if err != nil {
		return nil, err
	}

	if !rule.Audited() {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("commit transaction: %w", err)
		}
		slog.Info("report updated", "report_id", reportID, "actor_id", actor.ID, "transition", t)
		return report, nil
	}

	event := &domain.ReportEvent{
		ReportID: reportID,
		ActorID:  actor.ID,
		Type:     rule.Event,
		Note:     rule.EventNote(args.note),
		At:       report.UpdatedAt,
	}

	if err := s.createEventAndCommit(ctx, tx, event); err != nil {
		return nil, err
	}

	slog.Info("report transitioned",
		"report_id", reportID,
		"actor_id", actor.ID,
		"transition", t,
		"status", report.Status,
		"event_id", event.ID,
	)

	s.notifier.Dispatch(ctx, notify.NewMessage(event, report.Status))

	return report, nil
}

// checkTechnician re-reads the assignment target under FOR SHARE so its role cannot
// change before the assignment commits.
func (s *ReportService) checkTechnician(ctx context.Context, tx pgx.Tx, technicianID string) error {
	technician, err := s.userRepo.GetByIDForShare(ctx, tx, technicianID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrTechnicianNotFound, technicianID)
	}
	if err != nil {
		return fmt.Errorf("get technician: %w", err)
	}
	if technician.Role != domain.RoleTechnician {
		return fmt.Errorf("%w: user %s has role %s", domain.ErrInvalidTechnician, technicianID, technician.Role)
	}
	return nil
}

// classify re-reads the report inside the failed transaction to explain why the
// conditional write matched nothing.
func (s *ReportService) classify(
	ctx context.Context,
	tx pgx.Tx,
	rule domain.TransitionRule,
	reportID string,
	actorID string,
) error {
	current, err := s.reportRepo.GetByIDTx(ctx, tx, reportID)
	if errors.Is(err, domain.ErrReportNotFound) {
		return rule.Classify(nil, actorID)
	}
	if err != nil {
		return fmt.Errorf("re-read report: %w", err)
	}
	return rule.Classify(current, actorID)
}

// createEventAndCommit persists a report event within the transaction, then commits.
func (s *ReportService) createEventAndCommit(ctx context.Context, tx pgx.Tx, event *domain.ReportEvent) error {
	if err := s.eventRepo.Create(ctx, tx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *ReportService) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Error("failed to rollback transaction", "error", err)
	}
}
