package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationNewReport  NotificationType = "NEW_REPORT"
	NotificationNewComment NotificationType = "NEW_COMMENT"
)

// ReportEvent is what the lifecycle enqueues after a successful create or
// comment. The fan-out worker expands it into per-recipient notifications.
type ReportEvent struct {
	Type       NotificationType `json:"type"`
	ReportID   uuid.UUID        `json:"report_id"`
	Title      string           `json:"title"`
	Lat        float64          `json:"lat"`
	Lng        float64          `json:"lng"`
	ActorID    uuid.UUID        `json:"actor_id"`
	OwnerID    uuid.UUID        `json:"owner_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// Notification is the channel-agnostic payload delivered to one recipient.
type Notification struct {
	RecipientID uuid.UUID        `json:"recipient_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	ReportID    uuid.UUID        `json:"report_id"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Subscriber is a user's stored notification preference: their home point,
// the radius within which they want to hear about new reports, and channels.
type Subscriber struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	RadiusKM    float64   `json:"radius_km"`
	PushEnabled bool      `json:"push_enabled"`
}
