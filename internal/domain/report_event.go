package domain

import "time"

// EventType represents the type of report event.
type EventType string

const (
	EventTypeReported      EventType = "REPORTED"
	EventTypeReceived      EventType = "RECEIVED"
	EventTypeAssigned      EventType = "ASSIGNED"
	EventTypeStarted       EventType = "STARTED"
	EventTypeResolved      EventType = "RESOLVED"
	EventTypeStatusChanged EventType = "STATUS_CHANGED"
)

// ReportEvent represents an immutable audit log entry for one report transition.
type ReportEvent struct {
	ID       string
	ReportID string
	ActorID  string
	Type     EventType
	Note     string
	At       time.Time
}

// ReportEventWithActor is an event joined with its actor's identity.
type ReportEventWithActor struct {
	ReportEvent
	ActorName  string
	ActorEmail string
	ActorRole  Role
}
