package models

import "time"

type JobPosting struct {
	BaseModel
	HotelID    string    `gorm:"type:uuid;not null;index" json:"hotel_id"`
	Title      string    `gorm:"not null" json:"title"`
	ShiftDate  time.Time `gorm:"not null" json:"shift_date"`
	StartTime  time.Time `gorm:"not null" json:"start_time"`
	EndTime    time.Time `gorm:"not null" json:"end_time"`
	TotalHours float64   `gorm:"not null" json:"total_hours"`
	HourlyPay  float64   `gorm:"not null" json:"hourly_pay"`
	Location   string    `json:"location"`
	TotalSlots int       `gorm:"not null" json:"total_slots"`
	SlotsOpen  int       `gorm:"not null" json:"slots_open"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	IsFilled   bool      `gorm:"default:false" json:"is_filled"`

	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"-"`
}

// Expired reports the read-time "expired — unfilled" presentation: the
// posting was never filled but its end time has passed. No stored state
// changes at expiry; applications are refused from the end time onward.
func (p *JobPosting) Expired(now time.Time) bool {
	return !p.IsFilled && now.After(p.EndTime)
}
