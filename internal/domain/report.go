package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportVerified ReportStatus = "VERIFIED"
	ReportRejected ReportStatus = "REJECTED"
	ReportResolved ReportStatus = "RESOLVED"
	ReportDeleted  ReportStatus = "DELETED"
)

// Valid reports whether s is one of the known statuses.
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportVerified, ReportRejected, ReportResolved, ReportDeleted:
		return true
	}
	return false
}

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Report is a user-submitted geolocated incident record. ImportantVotes is
// kept equal to len(LikedUserIDs) by the storage layer; both are mutated in
// a single statement on toggle.
type Report struct {
	ID             uuid.UUID    `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Categories     []Category   `json:"categories"`
	Lat            float64      `json:"lat"`
	Lng            float64      `json:"lng"`
	Status         ReportStatus `json:"status"`
	ImportantVotes int          `json:"important_votes"`
	LikedUserIDs   []uuid.UUID  `json:"liked_user_ids"`
	OwnerID        uuid.UUID    `json:"owner_id"`
	CreatedAt      time.Time    `json:"created_at"`
}

// LikedBy reports whether userID currently holds an active vote.
func (r *Report) LikedBy(userID uuid.UUID) bool {
	for _, id := range r.LikedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// NearbyReport is a proximity-search hit with the distance from the query
// center, in meters.
type NearbyReport struct {
	Report
	DistanceM float64 `json:"distance_m"`
}
