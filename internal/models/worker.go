package models

import "time"

type Worker struct {
	BaseModel
	Name               string             `gorm:"not null" json:"name"`
	Email              string             `gorm:"uniqueIndex;not null" json:"email"`
	DateOfBirth        time.Time          `gorm:"not null" json:"date_of_birth"`
	WorkAuthCategory   string             `gorm:"type:varchar(30)" json:"work_auth_category"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verification_status"`
	TrainingProgress   int                `gorm:"default:0" json:"training_progress"`
	TotalHoursWorked   float64            `gorm:"default:0" json:"total_hours_worked"`
	Tier               Tier               `gorm:"type:varchar(20);default:'silver'" json:"tier"`
	AvgRating          *float64           `json:"avg_rating"`
	IsActive           bool               `gorm:"default:true" json:"is_active"`
	IsBanned           bool               `gorm:"default:false" json:"is_banned"`
}
