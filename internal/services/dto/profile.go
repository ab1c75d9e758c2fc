package dto

import "staffhub_backend/internal/models"

type VerifyRequest struct {
	Status models.VerificationStatus `json:"status" validate:"required,oneof=verified declined"`
}

type TrainingProgressRequest struct {
	Progress int `json:"progress" validate:"gte=0,lte=100"`
}

type BanRequest struct {
	Banned bool `json:"banned"`
}

// WorkerProfileResponse is the public reputation summary of a worker.
type WorkerProfileResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	TrainingProgress   int                       `json:"training_progress"`
	TotalHoursWorked   float64                   `json:"total_hours_worked"`
	Tier               models.Tier               `json:"tier"`
	AvgRating          *float64                  `json:"avg_rating"`
}

// HotelProfileResponse is the public reputation summary of a hotel.
type HotelProfileResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	TotalHoursHired    float64                   `json:"total_hours_hired"`
	Tier               models.Tier               `json:"tier"`
	AvgRating          *float64                  `json:"avg_rating"`
	IsPremium          bool                      `json:"is_premium"`
}
