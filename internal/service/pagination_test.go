package service

import (
	"testing"
	"time"

	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"below minimum", 2, 1, 2, 5},
		{"above maximum", 3, 500, 3, 50},
		{"in range", 1, 20, 1, 20},
		{"negative page", -4, 10, 1, 10},
		{"huge page", 1<<58 + 1, 50, maxPage, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := normalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.GreaterOrEqual(t, p.Offset(), 0)
		})
	}
}

func TestPage_WithTotal(t *testing.T) {
	p := normalizePage(2, 10).withTotal(25)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = normalizePage(1, 10).withTotal(0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNormalizeHistoryLimit(t *testing.T) {
	assert.Equal(t, 20, normalizeHistoryLimit(0))
	assert.Equal(t, 7, normalizeHistoryLimit(7))
	assert.Equal(t, 50, normalizeHistoryLimit(99))
}

func TestCursorRoundTrip(t *testing.T) {
	want := repository.HistoryCursor{
		UpdatedAt: time.Date(2026, 5, 1, 12, 0, 0, 123456000, time.UTC),
		ID:        "6f1c2d4e-8a9b-4c3d-9e8f-0a1b2c3d4e5f",
	}

	got, err := DecodeCursor(EncodeCursor(want))
	require.NoError(t, err)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
	assert.Equal(t, want.ID, got.ID)

	_, err = DecodeCursor("not-a-cursor")
	assert.Error(t, err)
}

func TestInputValidator_CreateReport(t *testing.T) {
	v := NewInputValidator()

	err := v.Struct(&CreateReportInput{
		Category:    "AIR",
		Title:       "Keran bocor",
		Description: "Keran kamar mandi lantai 2 bocor terus.",
	})
	assert.NoError(t, err)

	err = v.Struct(&CreateReportInput{
		Category:    "GAS",
		Title:       "ab",
		Description: "Keran kamar mandi bocor.",
		PhotoURL:    "not a url",
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category")
	assert.Equal(t, "must be at least 3 characters", verr.Fields["title"])
	assert.Equal(t, "must be a valid URL", verr.Fields["photo_url"])
	assert.NotContains(t, verr.Fields, "description")
}

func TestInputValidator_EditReport(t *testing.T) {
	v := NewInputValidator()

	empty := ""
	input := EditReportInput{Location: &empty}
	fields := input.fields()
	assert.Equal(t, map[string]any{"location": ""}, fields)

	var verr *domain.ValidationError
	require.ErrorAs(t, v.Struct(&input), &verr)
	assert.Contains(t, verr.Fields, "location")

	photo := "  "
	title := "  Lampu koridor mati  "
	input = EditReportInput{PhotoURL: &photo, Title: &title}
	fields = input.fields()
	assert.Nil(t, fields["photo_url"])
	assert.Equal(t, "Lampu koridor mati", fields["title"])
	assert.NoError(t, v.Struct(&input))
}

func TestInputValidator_Assign(t *testing.T) {
	v := NewInputValidator()

	var verr *domain.ValidationError
	require.ErrorAs(t, v.Struct(&AssignReportInput{TechnicianID: "42"}), &verr)
	assert.Equal(t, "must be a valid UUID", verr.Fields["technician_id"])

	assert.NoError(t, v.Struct(&AssignReportInput{TechnicianID: "6f1c2d4e-8a9b-4c3d-9e8f-0a1b2c3d4e5f"}))
}
