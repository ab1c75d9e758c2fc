package models

import "time"

// Shift is the confirmed engagement created when a hotel accepts an
// application. Schedule and pay are denormalized from the posting at
// acceptance time so later posting edits never alter a confirmed shift.
type Shift struct {
	BaseModel
	ApplicationID string    `gorm:"type:uuid;not null;uniqueIndex" json:"application_id"`
	PostingID     string    `gorm:"type:uuid;not null;index" json:"posting_id"`
	WorkerID      string    `gorm:"type:uuid;not null;index" json:"worker_id"`
	HotelID       string    `gorm:"type:uuid;not null;index" json:"hotel_id"`
	ShiftDate     time.Time `gorm:"not null" json:"shift_date"`
	StartTime     time.Time `gorm:"not null" json:"start_time"`
	EndTime       time.Time `gorm:"not null" json:"end_time"`
	TotalHours    float64   `gorm:"not null" json:"total_hours"`
	HourlyPay     float64   `gorm:"not null" json:"hourly_pay"`
	Location      string    `json:"location"`

	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	IsPaid      bool       `gorm:"default:false" json:"is_paid"`

	// RatingForWorker is set once by the hotel, RatingForHotel once by
	// the worker. Neither can be edited after the first write.
	RatingForWorker *int    `gorm:"check:rating_for_worker IS NULL OR (rating_for_worker >= 1 AND rating_for_worker <= 5)" json:"rating_for_worker"`
	ReviewForWorker *string `json:"review_for_worker,omitempty"`
	RatingForHotel  *int    `gorm:"check:rating_for_hotel IS NULL OR (rating_for_hotel >= 1 AND rating_for_hotel <= 5)" json:"rating_for_hotel"`
	ReviewForHotel  *string `json:"review_for_hotel,omitempty"`

	Worker *Worker `gorm:"foreignKey:WorkerID" json:"-"`
	Hotel  *Hotel  `gorm:"foreignKey:HotelID" json:"-"`
}
