package service

import (
	"testing"
	"time"

	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := base.Add(d)
	return &t
}

func TestComputeDurations_Averages(t *testing.T) {
	timings := []repository.ReportTiming{
		{
			CreatedAt:  base,
			ReceivedAt: at(10 * time.Minute),
			StartedAt:  at(20 * time.Minute),
			ResolvedAt: at(80 * time.Minute),
		},
		{
			CreatedAt:  base,
			ReceivedAt: at(30 * time.Minute),
		},
		{
			CreatedAt: base,
		},
	}

	d := ComputeDurations(timings)

	assert.Equal(t, int64(20*time.Minute/time.Millisecond), d.AvgResponseMs)
	assert.Equal(t, 2, d.ResponseCount)
	assert.Equal(t, int64(60*time.Minute/time.Millisecond), d.AvgWorkMs)
	assert.Equal(t, 1, d.WorkCount)
	assert.Equal(t, int64(80*time.Minute/time.Millisecond), d.AvgTotalMs)
	assert.Equal(t, 1, d.TotalCount)
}

func TestComputeDurations_ExcludesNegativeDiffs(t *testing.T) {
	timings := []repository.ReportTiming{
		{CreatedAt: base, ReceivedAt: at(-time.Minute)},
		{CreatedAt: base, ReceivedAt: at(4 * time.Second)},
		{CreatedAt: base, StartedAt: at(time.Hour), ResolvedAt: at(time.Minute)},
	}

	d := ComputeDurations(timings)

	// The negative response is excluded from both sum and count, not clamped.
	assert.Equal(t, int64(4000), d.AvgResponseMs)
	assert.Equal(t, 1, d.ResponseCount)
	assert.Equal(t, int64(0), d.AvgWorkMs)
	assert.Equal(t, 0, d.WorkCount)
	assert.Equal(t, int64(60000), d.AvgTotalMs)
}

func TestComputeDurations_EmptyIsZero(t *testing.T) {
	d := ComputeDurations(nil)
	assert.Equal(t, Durations{}, d)
}

func TestComputeDurations_RoundsToNearestMillisecond(t *testing.T) {
	timings := []repository.ReportTiming{
		{CreatedAt: base, ReceivedAt: at(1 * time.Millisecond)},
		{CreatedAt: base, ReceivedAt: at(2 * time.Millisecond)},
	}
	assert.Equal(t, int64(2), ComputeDurations(timings).AvgResponseMs)

	timings = append(timings, repository.ReportTiming{CreatedAt: base, ReceivedAt: at(2 * time.Millisecond)})
	assert.Equal(t, int64(2), ComputeDurations(timings).AvgResponseMs)
}

func TestComputeDurations_Idempotent(t *testing.T) {
	timings := []repository.ReportTiming{
		{CreatedAt: base, ReceivedAt: at(3 * time.Second), StartedAt: at(5 * time.Second), ResolvedAt: at(13 * time.Second)},
		{CreatedAt: base, ReceivedAt: at(7 * time.Second)},
	}
	assert.Equal(t, ComputeDurations(timings), ComputeDurations(timings))
}

func TestNewDateRange(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("default is last seven days", func(t *testing.T) {
		rng, err := NewDateRange(time.Time{}, time.Time{}, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), rng.From)
		assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), rng.To)
		assert.Len(t, rng.Days(), 7)
	})

	t.Run("last day is inclusive", func(t *testing.T) {
		first, err := ParseDay("from", "2026-02-01")
		require.NoError(t, err)
		last, err := ParseDay("to", "2026-02-01")
		require.NoError(t, err)

		rng, err := NewDateRange(first, last, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-02-01"}, rng.Days())
		assert.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), rng.To)
	})

	t.Run("inverted range", func(t *testing.T) {
		first, _ := ParseDay("from", "2026-02-05")
		last, _ := ParseDay("to", "2026-02-01")
		_, err := NewDateRange(first, last, now)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("span is capped", func(t *testing.T) {
		first, _ := ParseDay("from", "0001-01-01")
		last, _ := ParseDay("to", "9999-12-31")
		_, err := NewDateRange(first, last, now)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "to")

		first, _ = ParseDay("from", "2025-03-10")
		last, _ = ParseDay("to", "2026-03-10")
		rng, err := NewDateRange(first, last, now)
		require.NoError(t, err)
		assert.Len(t, rng.Days(), 366)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := ParseDay("from", "05/02/2026")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestFillDays(t *testing.T) {
	rng := DateRange{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
	}
	got := fillDays(rng, []repository.DayCount{{Day: "2026-01-02", Count: 5}})
	assert.Equal(t, []repository.DayCount{
		{Day: "2026-01-01", Count: 0},
		{Day: "2026-01-02", Count: 5},
		{Day: "2026-01-03", Count: 0},
	}, got)
}

func TestDiffMs(t *testing.T) {
	assert.Nil(t, diffMs(&base, nil))
	assert.Nil(t, diffMs(at(time.Second), &base))
	ms := diffMs(&base, at(1500*time.Millisecond))
	require.NotNil(t, ms)
	assert.Equal(t, int64(1500), *ms)
}
