package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestLookupTransition_RoleMatrix(t *testing.T) {
	tests := []struct {
		transition Transition
		role       Role
		allowed    bool
	}{
		{TransitionReceive, RoleAdmin, true},
		{TransitionReceive, RoleUser, false},
		{TransitionReceive, RoleTechnician, false},
		{TransitionAssign, RoleAdmin, true},
		{TransitionAssign, RoleTechnician, false},
		{TransitionStart, RoleTechnician, true},
		{TransitionStart, RoleAdmin, false},
		{TransitionResolve, RoleTechnician, true},
		{TransitionResolve, RoleUser, false},
		{TransitionReject, RoleAdmin, true},
		{TransitionReject, RoleTechnician, false},
		{TransitionEdit, RoleUser, true},
		{TransitionEdit, RoleAdmin, false},
		{TransitionDelete, RoleUser, true},
		{TransitionDelete, RoleAdmin, true},
		{TransitionDelete, RoleTechnician, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.transition)+"/"+string(tt.role), func(t *testing.T) {
			rule, err := LookupTransition(tt.transition, tt.role)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.role, rule.Role)
				return
			}
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}
}

func TestLookupTransition_Unknown(t *testing.T) {
	_, err := LookupTransition("archive", RoleAdmin)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrForbidden))
}

func TestTransitionRule_Edges(t *testing.T) {
	edges := map[Transition][]ReportStatus{
		TransitionReceive: {ReportStatusNew},
		TransitionAssign:  {ReportStatusProcessing},
		TransitionStart:   {ReportStatusProcessing},
		TransitionResolve: {ReportStatusInProgress},
		TransitionReject:  {ReportStatusNew, ReportStatusProcessing, ReportStatusInProgress},
	}
	roles := map[Transition]Role{
		TransitionReceive: RoleAdmin,
		TransitionAssign:  RoleAdmin,
		TransitionStart:   RoleTechnician,
		TransitionResolve: RoleTechnician,
		TransitionReject:  RoleAdmin,
	}

	for transition, from := range edges {
		rule, err := LookupTransition(transition, roles[transition])
		require.NoError(t, err)
		for _, s := range AllReportStatuses {
			want := false
			for _, f := range from {
				if f == s {
					want = true
				}
			}
			assert.Equal(t, want, rule.Allows(s), "%s from %s", transition, s)
		}
		assert.True(t, rule.Audited(), "%s must append an event", transition)
	}
}

func TestTransitionRule_TerminalStatesHaveNoOutgoingEdges(t *testing.T) {
	for _, rule := range transitionRules {
		if rule.Transition == TransitionDelete {
			continue
		}
		assert.False(t, rule.Allows(ReportStatusDone), "%s/%s", rule.Transition, rule.Role)
		assert.False(t, rule.Allows(ReportStatusRejected), "%s/%s", rule.Transition, rule.Role)
	}
}

func TestTransitionRule_DeleteByRole(t *testing.T) {
	user, err := LookupTransition(TransitionDelete, RoleUser)
	require.NoError(t, err)
	assert.True(t, user.Allows(ReportStatusNew))
	assert.False(t, user.Allows(ReportStatusProcessing))
	assert.Equal(t, OwnershipReporter, user.Ownership)

	admin, err := LookupTransition(TransitionDelete, RoleAdmin)
	require.NoError(t, err)
	for _, s := range AllReportStatuses {
		assert.True(t, admin.Allows(s))
	}
	assert.Equal(t, OwnershipNone, admin.Ownership)
}

func TestTransitionRule_Classify(t *testing.T) {
	resolve, err := LookupTransition(TransitionResolve, RoleTechnician)
	require.NoError(t, err)

	t.Run("missing", func(t *testing.T) {
		assert.ErrorIs(t, resolve.Classify(nil, "t1"), ErrReportNotFound)
	})

	t.Run("wrong assignee", func(t *testing.T) {
		report := &Report{Status: ReportStatusInProgress, AssignedTo: ptr("t2")}
		err := resolve.Classify(report, "t1")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.ErrorIs(t, err, ErrNotAssignee)
	})

	t.Run("stale status", func(t *testing.T) {
		report := &Report{Status: ReportStatusDone, AssignedTo: ptr("t1")}
		err := resolve.Classify(report, "t1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.False(t, errors.Is(err, ErrForbidden))
	})

	t.Run("reporter ownership", func(t *testing.T) {
		del, err := LookupTransition(TransitionDelete, RoleUser)
		require.NoError(t, err)
		report := &Report{ReporterID: "u2", Status: ReportStatusNew}
		assert.ErrorIs(t, del.Classify(report, "u1"), ErrNotReporter)

		report.ReporterID = "u1"
		report.Status = ReportStatusProcessing
		assert.ErrorIs(t, del.Classify(report, "u1"), ErrInvalidTransition)
	})
}

func TestTransitionRule_EventNote(t *testing.T) {
	reject, err := LookupTransition(TransitionReject, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Admin menolak laporan.", reject.EventNote("  "))
	assert.Equal(t, "Admin menolak laporan: duplikat", reject.EventNote("duplikat"))

	assign, err := LookupTransition(TransitionAssign, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Admin assign teknisi (abc).", assign.EventNote("abc"))
	assert.False(t, assign.ChangesStatus())

	start, err := LookupTransition(TransitionStart, RoleTechnician)
	require.NoError(t, err)
	assert.Equal(t, "Teknisi mulai mengerjakan laporan.", start.EventNote("ignored"))
}

func TestParseReadMode(t *testing.T) {
	assert.Equal(t, ReadModeEventual, ParseReadMode("eventual", ReadModeStrong))
	assert.Equal(t, ReadModeWeak, ParseReadMode("weak", ReadModeStrong))
	assert.Equal(t, ReadModeStrong, ParseReadMode("", ReadModeStrong))
	assert.Equal(t, ReadModeWeak, ParseReadMode("bogus", ReadModeWeak))
	assert.False(t, ReadModeStrong.IsRelaxed())
	assert.True(t, ReadModeWeak.IsRelaxed())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"title": "too short", "category": "invalid"}}
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation failed: category: invalid; title: too short", err.Error())
}
