package dto

import (
	"time"

	"staffhub_backend/internal/tier"
)

// CompleteShiftResponse reports the promotions (if any) produced by
// the hour accrual on both sides of the shift.
type CompleteShiftResponse struct {
	WorkerPromotion *tier.Promotion `json:"worker_promotion,omitempty"`
	HotelPromotion  *tier.Promotion `json:"hotel_promotion,omitempty"`
}

type RateShiftRequest struct {
	// Range is enforced by the eligibility gate so an out-of-range
	// value surfaces as the domain reason, not a binding failure.
	Rating int     `json:"rating"`
	Review *string `json:"review,omitempty" validate:"omitempty,max=1000"`
}

type ShiftResponse struct {
	ID              string     `json:"id"`
	PostingID       string     `json:"posting_id"`
	WorkerID        string     `json:"worker_id"`
	HotelID         string     `json:"hotel_id"`
	ShiftDate       time.Time  `json:"shift_date"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	TotalHours      float64    `json:"total_hours"`
	HourlyPay       float64    `json:"hourly_pay"`
	Location        string     `json:"location"`
	IsCompleted     bool       `json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	IsPaid          bool       `json:"is_paid"`
	RatingForWorker *int       `json:"rating_for_worker,omitempty"`
	RatingForHotel  *int       `json:"rating_for_hotel,omitempty"`
}

type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}
