// Package queue publishes domain events for external collaborators
// (notification and reporting services consume them); nothing in the
// core depends on delivery.
package queue

import "time"

// PostingFilledEvent is published when the last slot of a posting is
// consumed and its pending applications are cascade-declined.
type PostingFilledEvent struct {
	PostingID       string    `json:"posting_id"`
	HotelID         string    `json:"hotel_id"`
	DeclinedPending int64     `json:"declined_pending"`
	FilledAt        time.Time `json:"filled_at"`
}

// ShiftCompletedEvent is published when a hotel marks a shift done.
type ShiftCompletedEvent struct {
	ShiftID     string    `json:"shift_id"`
	WorkerID    string    `json:"worker_id"`
	HotelID     string    `json:"hotel_id"`
	TotalHours  float64   `json:"total_hours"`
	CompletedAt time.Time `json:"completed_at"`
}

// TierPromotedEvent is published when accumulated hours move a
// participant into a higher tier.
type TierPromotedEvent struct {
	ParticipantID string `json:"participant_id"`
	Role          string `json:"role"`
	FromTier      string `json:"from_tier"`
	ToTier        string `json:"to_tier"`
}
