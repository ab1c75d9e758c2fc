package models

import "time"

// Application links one worker to one posting. The (worker, posting)
// pair is unique: a worker can never apply twice to the same posting.
type Application struct {
	BaseModel
	WorkerID      string            `gorm:"type:uuid;not null;uniqueIndex:idx_worker_posting" json:"worker_id"`
	PostingID     string            `gorm:"type:uuid;not null;uniqueIndex:idx_worker_posting;index" json:"posting_id"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Message       string            `json:"message"`
	DeclineReason *string           `json:"decline_reason,omitempty"`
	RespondedAt   *time.Time        `json:"responded_at,omitempty"`

	Worker  *Worker     `gorm:"foreignKey:WorkerID" json:"-"`
	Posting *JobPosting `gorm:"foreignKey:PostingID" json:"-"`
}
