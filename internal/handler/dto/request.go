package dto

// CreateReportRequest represents the request body for POST /reports.
type CreateReportRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Location    string `json:"location,omitempty"`
}

// EditReportRequest represents the request body for PATCH /reports/{id}.
// Omitted fields are left unchanged; an empty photo_url removes the photo.
type EditReportRequest struct {
	Category    *string `json:"category,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// AssignReportRequest represents the request body for POST /reports/{id}/assign.
type AssignReportRequest struct {
	TechnicianID string `json:"technician_id"`
}

// RejectReportRequest represents the request body for POST /reports/{id}/reject.
type RejectReportRequest struct {
	Note string `json:"note,omitempty"`
}
