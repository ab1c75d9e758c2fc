package dto

import "time"

type CreatePostingRequest struct {
	Title      string  `json:"title" validate:"required,min=3,max=120"`
	ShiftDate  string  `json:"shift_date" validate:"required,datetime=2006-01-02"`
	StartTime  string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string  `json:"end_time" validate:"required,datetime=15:04"`
	HourlyPay  float64 `json:"hourly_pay" validate:"required,gt=0"`
	Location   string  `json:"location" validate:"max=200"`
	TotalSlots int     `json:"total_slots" validate:"required,gte=1,lte=100"`
}

type CreatePostingResponse struct {
	PostingID string `json:"posting_id"`
}

// Posting status presentation values. "expired" is computed at read
// time for unfilled postings whose end time has passed.
const (
	PostingStatusOpen     = "open"
	PostingStatusFilled   = "filled"
	PostingStatusExpired  = "expired"
	PostingStatusInactive = "inactive"
)

type PostingResponse struct {
	ID         string    `json:"id"`
	HotelID    string    `json:"hotel_id"`
	Title      string    `json:"title"`
	ShiftDate  time.Time `json:"shift_date"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	TotalHours float64   `json:"total_hours"`
	HourlyPay  float64   `json:"hourly_pay"`
	Location   string    `json:"location"`
	TotalSlots int       `json:"total_slots"`
	SlotsOpen  int       `json:"slots_open"`
	Status     string    `json:"status"`
}

type PostingListResponse struct {
	Postings []PostingResponse `json:"postings"`
}
