package repositories

import (
	"errors"

	"gorm.io/gorm"

	"staffhub_backend/internal/models"
)

var ErrHotelNotFound = errors.New("hotel not found")

type HotelRepository struct{}

func NewHotelRepository() *HotelRepository {
	return &HotelRepository{}
}

func (r *HotelRepository) Create(db *gorm.DB, hotel *models.Hotel) error {
	return db.Create(hotel).Error
}

func (r *HotelRepository) FindByID(db *gorm.DB, id string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := db.First(&hotel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) UpdateVerification(db *gorm.DB, id string, status models.VerificationStatus) error {
	return db.Model(&models.Hotel{}).Where("id = ?", id).
		UpdateColumn("verification_status", status).Error
}

// AddHoursHired mirrors WorkerRepository.AddHoursWorked: hotels
// accumulate hours hired through the same atomic increment.
func (r *HotelRepository) AddHoursHired(db *gorm.DB, id string, hours float64) error {
	return db.Model(&models.Hotel{}).Where("id = ?", id).
		UpdateColumn("total_hours_hired", gorm.Expr("total_hours_hired + ?", hours)).Error
}

func (r *HotelRepository) UpdateTier(db *gorm.DB, id string, t models.Tier) error {
	return db.Model(&models.Hotel{}).Where("id = ?", id).
		UpdateColumn("tier", t).Error
}

func (r *HotelRepository) UpdateAvgRating(db *gorm.DB, id string, avg *float64) error {
	return db.Model(&models.Hotel{}).Where("id = ?", id).
		UpdateColumn("avg_rating", avg).Error
}
