package models

type Hotel struct {
	BaseModel
	Name               string             `gorm:"not null" json:"name"`
	Email              string             `gorm:"uniqueIndex;not null" json:"email"`
	BusinessRegNo      string             `gorm:"type:varchar(30)" json:"business_reg_no"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verification_status"`
	SubscriptionActive bool               `gorm:"default:false" json:"subscription_active"`
	TotalHoursHired    float64            `gorm:"default:0" json:"total_hours_hired"`
	Tier               Tier               `gorm:"type:varchar(20);default:'silver'" json:"tier"`
	AvgRating          *float64           `json:"avg_rating"`
	IsPremium          bool               `gorm:"default:false" json:"is_premium"`
}
