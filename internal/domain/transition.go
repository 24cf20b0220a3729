package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Transition names an operation of the report lifecycle.
type Transition string

const (
	TransitionReceive Transition = "receive"
	TransitionAssign  Transition = "assign"
	TransitionStart   Transition = "start"
	TransitionResolve Transition = "resolve"
	TransitionReject  Transition = "reject"
	TransitionEdit    Transition = "edit"
	TransitionDelete  Transition = "delete"
)

// Ownership is the per-row predicate a transition requires in addition to the role.
type Ownership int

const (
	OwnershipNone Ownership = iota
	OwnershipAssignee
	OwnershipReporter
)

// Stamp names the workflow timestamp a transition sets to the transaction time.
type Stamp int

const (
	StampNone Stamp = iota
	StampReceived
	StampStarted
	StampResolved
)

// TransitionRule declares the authorization contract and effect of one transition for one role.
type TransitionRule struct {
	Transition Transition
	Role       Role
	From       []ReportStatus
	// To is empty when the transition leaves the status unchanged.
	To        ReportStatus
	Ownership Ownership
	Stamp     Stamp
	// Event is empty when the transition is not audited.
	Event EventType
	Note  string
}

var transitionRules = []TransitionRule{
	{
		Transition: TransitionReceive,
		Role:       RoleAdmin,
		From:       []ReportStatus{ReportStatusNew},
		To:         ReportStatusProcessing,
		Stamp:      StampReceived,
		Event:      EventTypeReceived,
		Note:       "Admin menerima laporan.",
	},
	{
		Transition: TransitionAssign,
		Role:       RoleAdmin,
		From:       []ReportStatus{ReportStatusProcessing},
		Event:      EventTypeAssigned,
		Note:       "Admin assign teknisi.",
	},
	{
		Transition: TransitionStart,
		Role:       RoleTechnician,
		From:       []ReportStatus{ReportStatusProcessing},
		To:         ReportStatusInProgress,
		Ownership:  OwnershipAssignee,
		Stamp:      StampStarted,
		Event:      EventTypeStarted,
		Note:       "Teknisi mulai mengerjakan laporan.",
	},
	{
		Transition: TransitionResolve,
		Role:       RoleTechnician,
		From:       []ReportStatus{ReportStatusInProgress},
		To:         ReportStatusDone,
		Ownership:  OwnershipAssignee,
		Stamp:      StampResolved,
		Event:      EventTypeResolved,
		Note:       "Teknisi menyelesaikan laporan.",
	},
	{
		Transition: TransitionReject,
		Role:       RoleAdmin,
		From:       []ReportStatus{ReportStatusNew, ReportStatusProcessing, ReportStatusInProgress},
		To:         ReportStatusRejected,
		Event:      EventTypeStatusChanged,
		Note:       "Admin menolak laporan.",
	},
	{
		Transition: TransitionEdit,
		Role:       RoleUser,
		From:       []ReportStatus{ReportStatusNew},
		Ownership:  OwnershipReporter,
	},
	{
		Transition: TransitionDelete,
		Role:       RoleUser,
		From:       []ReportStatus{ReportStatusNew},
		Ownership:  OwnershipReporter,
	},
	{
		Transition: TransitionDelete,
		Role:       RoleAdmin,
		From:       AllReportStatuses,
	},
}

// LookupTransition returns the rule governing transition t for the given role.
// A role with no rule for t gets ErrForbidden.
func LookupTransition(t Transition, role Role) (TransitionRule, error) {
	known := false
	for _, rule := range transitionRules {
		if rule.Transition != t {
			continue
		}
		known = true
		if rule.Role == role {
			return rule, nil
		}
	}
	if !known {
		return TransitionRule{}, fmt.Errorf("unknown transition %q", t)
	}
	return TransitionRule{}, fmt.Errorf("%w: role %s cannot %s a report", ErrForbidden, role, t)
}

// Allows returns true if the rule accepts a report currently in status s.
func (r TransitionRule) Allows(s ReportStatus) bool {
	return slices.Contains(r.From, s)
}

// ChangesStatus returns true if applying the rule moves the report to another status.
func (r TransitionRule) ChangesStatus() bool {
	return r.To != ""
}

// Audited returns true if the rule appends an event.
func (r TransitionRule) Audited() bool {
	return r.Event != ""
}

// IsOwnedBy checks the rule's ownership predicate against a report and actor.
func (r TransitionRule) IsOwnedBy(report *Report, actorID string) bool {
	switch r.Ownership {
	case OwnershipAssignee:
		return report.IsAssignedTo(actorID)
	case OwnershipReporter:
		return report.IsReportedBy(actorID)
	default:
		return true
	}
}

// EventNote returns the note recorded for the transition. For reject, a caller-supplied
// reason is appended. For assign, the technician id is included.
func (r TransitionRule) EventNote(detail string) string {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return r.Note
	}
	switch r.Transition {
	case TransitionReject:
		return "Admin menolak laporan: " + detail
	case TransitionAssign:
		return fmt.Sprintf("Admin assign teknisi (%s).", detail)
	default:
		return r.Note
	}
}

// Classify explains why a CAS update for this rule matched no row, given the row
// as re-read inside the same transaction (nil when it no longer exists).
func (r TransitionRule) Classify(report *Report, actorID string) error {
	if report == nil {
		return ErrReportNotFound
	}
	if !r.IsOwnedBy(report, actorID) {
		if r.Ownership == OwnershipAssignee {
			return fmt.Errorf("%w: %w", ErrForbidden, ErrNotAssignee)
		}
		return fmt.Errorf("%w: %w", ErrForbidden, ErrNotReporter)
	}
	return fmt.Errorf("%w: cannot %s report in status %s", ErrInvalidTransition, r.Transition, report.Status)
}
