package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/repository"
)

const (
	dayLayout        = "2006-01-02"
	defaultRangeDays = 7
	maxRangeDays     = 366

	defaultTimingLimit = 50
	minTimingLimit     = 10
	maxTimingLimit     = 200
)

// DateRange is a half-open UTC interval [From, To) on calendar-day boundaries.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds a range from an inclusive first and last day. Zero values select
// the default: the last seven days up to and including today.
func NewDateRange(first, last time.Time, now time.Time) (DateRange, error) {
	today := truncateDay(now)

	to := today.AddDate(0, 0, 1)
	if !last.IsZero() {
		to = truncateDay(last).AddDate(0, 0, 1)
	}
	from := today.AddDate(0, 0, -(defaultRangeDays - 1))
	if !first.IsZero() {
		from = truncateDay(first)
	}

	if !from.Before(to) {
		return DateRange{}, domain.NewValidationError("from", "must not be after to")
	}
	if from.AddDate(0, 0, maxRangeDays).Before(to) {
		return DateRange{}, domain.NewValidationError("to", fmt.Sprintf("range must not exceed %d days", maxRangeDays))
	}
	return DateRange{From: from, To: to}, nil
}

// ParseDay parses a YYYY-MM-DD value as a UTC day. An empty value yields the zero time.
func ParseDay(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	day, err := time.ParseInLocation(dayLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return day, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days lists every calendar day in the range.
func (r DateRange) Days() []string {
	var days []string
	for d := r.From; d.Before(r.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dayLayout))
	}
	return days
}

// Durations holds the average workflow durations in milliseconds, with the
// number of reports each average is taken over.
type Durations struct {
	AvgResponseMs int64
	AvgWorkMs     int64
	AvgTotalMs    int64
	ResponseCount int
	WorkCount     int
	TotalCount    int
}

type durationSum struct {
	sum   int64
	count int
}

func (d *durationSum) add(from, to *time.Time) {
	if from == nil || to == nil {
		return
	}
	diff := to.Sub(*from).Milliseconds()
	if diff < 0 {
		return
	}
	d.sum += diff
	d.count++
}

func (d durationSum) avg() int64 {
	if d.count == 0 {
		return 0
	}
	return int64(math.Round(float64(d.sum) / float64(d.count)))
}

// ComputeDurations averages response (received - created), work (resolved - started)
// and total (resolved - created) durations. Pairs with a missing side or a negative
// difference are left out of both sum and count; an empty metric averages 0.
func ComputeDurations(timings []repository.ReportTiming) Durations {
	var response, work, total durationSum
	for i := range timings {
		t := &timings[i]
		created := t.CreatedAt
		response.add(&created, t.ReceivedAt)
		work.add(t.StartedAt, t.ResolvedAt)
		total.add(&created, t.ResolvedAt)
	}
	return Durations{
		AvgResponseMs: response.avg(),
		AvgWorkMs:     work.avg(),
		AvgTotalMs:    total.avg(),
		ResponseCount: response.count,
		WorkCount:     work.count,
		TotalCount:    total.count,
	}
}

// Aggregates is the admin dashboard summary for one date range.
type Aggregates struct {
	Mode       domain.ReadMode
	Range      DateRange
	ByStatus   map[domain.ReportStatus]int
	ByDay      []repository.DayCount
	Durations  Durations
	Total      int
	Finished   int
	Rejected   int
	Received   int
	InProgress int
}

// TimingRow is one report's timestamps with its individual durations.
type TimingRow struct {
	repository.ReportTiming
	ResponseMs *int64
	WorkMs     *int64
	TotalMs    *int64
}

// TimingPage is one page of per-report timing details.
type TimingPage struct {
	Range  DateRange
	Rows   []TimingRow
	Limit  int
	Offset int
}

// StatsService derives dashboard aggregates from stored report timestamps.
type StatsService struct {
	statsRepo *repository.StatsRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(statsRepo *repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

func requireAdmin(actor *domain.Identity) error {
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return nil
}

// GetAggregates computes status counts, per-day counts and average durations for
// reports created in the range, read from the store chosen by mode.
func (s *StatsService) GetAggregates(
	ctx context.Context,
	actor *domain.Identity,
	mode domain.ReadMode,
	rng DateRange,
) (*Aggregates, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	counts, err := s.statsRepo.CountByStatus(ctx, mode, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	days, err := s.statsRepo.CountByDay(ctx, mode, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	timings, err := s.statsRepo.Timings(ctx, mode, rng.From, rng.To, 0, 0)
	if err != nil {
		return nil, err
	}

	agg := &Aggregates{
		Mode:      mode,
		Range:     rng,
		ByStatus:  make(map[domain.ReportStatus]int, len(domain.AllReportStatuses)),
		ByDay:     fillDays(rng, days),
		Durations: ComputeDurations(timings),
	}
	for _, status := range domain.AllReportStatuses {
		agg.ByStatus[status] = counts[status]
		agg.Total += counts[status]
	}
	agg.Finished = counts[domain.ReportStatusDone]
	agg.Rejected = counts[domain.ReportStatusRejected]
	agg.InProgress = counts[domain.ReportStatusInProgress]
	for i := range timings {
		if timings[i].ReceivedAt != nil {
			agg.Received++
		}
	}

	return agg, nil
}

// fillDays returns one entry per day of the range, zero where no reports were created.
func fillDays(rng DateRange, counts []repository.DayCount) []repository.DayCount {
	byDay := make(map[string]int, len(counts))
	for _, c := range counts {
		byDay[c.Day] = c.Count
	}
	days := rng.Days()
	out := make([]repository.DayCount, len(days))
	for i, day := range days {
		out[i] = repository.DayCount{Day: day, Count: byDay[day]}
	}
	return out
}

// ListTimings returns per-report timestamps and durations for reports created in the range.
func (s *StatsService) ListTimings(
	ctx context.Context,
	actor *domain.Identity,
	mode domain.ReadMode,
	rng DateRange,
	limit, offset int,
) (*TimingPage, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultTimingLimit
	case limit < minTimingLimit:
		limit = minTimingLimit
	case limit > maxTimingLimit:
		limit = maxTimingLimit
	}
	if offset < 0 {
		offset = 0
	}

	timings, err := s.statsRepo.Timings(ctx, mode, rng.From, rng.To, limit, offset)
	if err != nil {
		return nil, err
	}

	rows := make([]TimingRow, len(timings))
	for i, t := range timings {
		created := t.CreatedAt
		rows[i] = TimingRow{
			ReportTiming: t,
			ResponseMs:   diffMs(&created, t.ReceivedAt),
			WorkMs:       diffMs(t.StartedAt, t.ResolvedAt),
			TotalMs:      diffMs(&created, t.ResolvedAt),
		}
	}

	return &TimingPage{Range: rng, Rows: rows, Limit: limit, Offset: offset}, nil
}

func diffMs(from, to *time.Time) *int64 {
	if from == nil || to == nil {
		return nil
	}
	ms := to.Sub(*from).Milliseconds()
	if ms < 0 {
		return nil
	}
	return &ms
}
