package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistory is one immutable audit record of a status transition.
// Rows are appended in the same transaction as the status write and never
// updated or deleted afterwards.
type StatusHistory struct {
	ID             uuid.UUID    `json:"id"`
	ReportID       uuid.UUID    `json:"report_id"`
	UserID         uuid.UUID    `json:"user_id"`
	PreviousStatus ReportStatus `json:"previous_status"`
	NewStatus      ReportStatus `json:"new_status"`
	ChangedAt      time.Time    `json:"changed_at"`
}

// HistoryFilter narrows history queries. Zero-value fields are ignored;
// NewStatus combined with From/To gives the status+date-range query.
type HistoryFilter struct {
	ReportID       uuid.UUID
	UserID         uuid.UUID
	PreviousStatus ReportStatus
	NewStatus      ReportStatus
	From           time.Time
	To             time.Time
}

type HistoryPage struct {
	Items []StatusHistory `json:"items"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int64           `json:"total"`
}
