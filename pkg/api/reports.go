package api

import "time"

// ReportStatus is driven by the server; the client never changes it directly.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusCompleted  ReportStatus = "completed"
	ReportStatusFailed     ReportStatus = "failed"
)

// ReportStatuses lists every known status in display order.
var ReportStatuses = []ReportStatus{
	ReportStatusPending,
	ReportStatusProcessing,
	ReportStatusCompleted,
	ReportStatusFailed,
}

// Valid reports whether s is one of the known statuses.
func (s ReportStatus) Valid() bool {
	for _, known := range ReportStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Report is a generated report. FileURL is set only for completed reports.
type Report struct {
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Description *string      `json:"description,omitempty"`
	FileURL     *string      `json:"file_url,omitempty"`
	Title       string       `json:"title"`
	Status      ReportStatus `json:"status"`
	ID          int64        `json:"id"`
}

// ReportCreate is the body of POST /v1/reports/.
// An empty Status lets the server apply its default (pending).
type ReportCreate struct {
	Description *string      `json:"description,omitempty"`
	Title       string       `json:"title"`
	Status      ReportStatus `json:"status,omitempty"`
}
