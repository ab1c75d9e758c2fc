package dto

import (
	"time"

	"staffhub_backend/internal/models"
	"staffhub_backend/internal/tier"
)

type ApplyRequest struct {
	Message string `json:"message" validate:"max=500"`
}

type ApplyResponse struct {
	ApplicationID string `json:"application_id"`
}

type DeclineApplicationRequest struct {
	Reason string `json:"reason" validate:"max=200"`
}

// AcceptApplicationResponse carries the created shift and, when the
// acceptance itself crossed a tier boundary, the promotion to display.
type AcceptApplicationResponse struct {
	ShiftID   string          `json:"shift_id"`
	Promotion *tier.Promotion `json:"promotion,omitempty"`
}

type ApplicationResponse struct {
	ID            string                   `json:"id"`
	WorkerID      string                   `json:"worker_id"`
	PostingID     string                   `json:"posting_id"`
	Status        models.ApplicationStatus `json:"status"`
	Message       string                   `json:"message,omitempty"`
	DeclineReason *string                  `json:"decline_reason,omitempty"`
	RespondedAt   *time.Time               `json:"responded_at,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}
