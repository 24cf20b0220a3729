package domain

import "time"

// ReportStatus represents the status of a report in the lifecycle state machine.
type ReportStatus string

const (
	ReportStatusNew        ReportStatus = "BARU"
	ReportStatusProcessing ReportStatus = "DIPROSES"
	ReportStatusInProgress ReportStatus = "DIKERJAKAN"
	ReportStatusDone       ReportStatus = "SELESAI"
	ReportStatusRejected   ReportStatus = "DITOLAK"
)

// AllReportStatuses lists every status in lifecycle order.
var AllReportStatuses = []ReportStatus{
	ReportStatusNew,
	ReportStatusProcessing,
	ReportStatusInProgress,
	ReportStatusDone,
	ReportStatusRejected,
}

// IsTerminal returns true if the status is terminal (no transitions allowed).
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusDone || s == ReportStatusRejected
}

// IsValid checks if the status is one of the allowed values.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusNew, ReportStatusProcessing, ReportStatusInProgress,
		ReportStatusDone, ReportStatusRejected:
		return true
	default:
		return false
	}
}

// ReportCategory classifies the facility a report is about.
type ReportCategory string

const (
	CategoryWater       ReportCategory = "AIR"
	CategoryElectricity ReportCategory = "LISTRIK"
	CategoryWifi        ReportCategory = "WIFI"
	CategoryCleanliness ReportCategory = "KEBERSIHAN"
	CategoryPublicArea  ReportCategory = "FASILITAS_UMUM"
	CategoryOther       ReportCategory = "LAINNYA"
)

// IsValid checks if the category is one of the allowed values.
func (c ReportCategory) IsValid() bool {
	switch c {
	case CategoryWater, CategoryElectricity, CategoryWifi,
		CategoryCleanliness, CategoryPublicArea, CategoryOther:
		return true
	default:
		return false
	}
}

// ReportPriority represents the urgency declared by the reporter.
type ReportPriority string

const (
	PriorityLow    ReportPriority = "RENDAH"
	PriorityMedium ReportPriority = "SEDANG"
	PriorityHigh   ReportPriority = "TINGGI"
)

// IsValid checks if the priority is one of the allowed values.
func (p ReportPriority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// DefaultLocation is used when neither the request nor the reporter's room provides one.
const DefaultLocation = "Tidak diketahui"

// Report represents a facility complaint and its workflow state.
type Report struct {
	ID          string
	ReporterID  string
	Category    ReportCategory
	Title       string
	Description string
	PhotoURL    *string
	Priority    ReportPriority
	Location    string
	Status      ReportStatus
	AssignedTo  *string
	ReceivedAt  *time.Time
	StartedAt   *time.Time
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAssignedTo checks if the report is assigned to the given technician.
func (r *Report) IsAssignedTo(userID string) bool {
	return r.AssignedTo != nil && *r.AssignedTo == userID
}

// IsReportedBy checks if the report was filed by the given user.
func (r *Report) IsReportedBy(userID string) bool {
	return r.ReporterID == userID
}

// CanBeViewedBy reports whether the identity may read the report and its events:
// the reporter, the assigned technician or any admin.
func (r *Report) CanBeViewedBy(id *Identity) bool {
	return id.Role == RoleAdmin || r.IsReportedBy(id.ID) || r.IsAssignedTo(id.ID)
}

// ReportWithReporter is a report joined with the reporter's public profile.
type ReportWithReporter struct {
	Report
	ReporterName string
	ReporterRoom *string
}
