package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"staffhub_backend/internal/models"
)

var (
	ErrShiftNotFound = errors.New("shift not found")
	// ErrShiftStateConflict means a conditional shift update matched no
	// row: the guard (not completed / not yet rated) no longer held.
	ErrShiftStateConflict = errors.New("shift state changed concurrently")
)

type ShiftRepository struct{}

func NewShiftRepository() *ShiftRepository {
	return &ShiftRepository{}
}

func (r *ShiftRepository) Create(db *gorm.DB, shift *models.Shift) error {
	return db.Create(shift).Error
}

func (r *ShiftRepository) FindByID(db *gorm.DB, id string) (*models.Shift, error) {
	var shift models.Shift
	if err := db.First(&shift, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return &shift, nil
}

func (r *ShiftRepository) ListByWorker(db *gorm.DB, workerID string) ([]models.Shift, error) {
	var shifts []models.Shift
	err := db.
		Where("worker_id = ?", workerID).
		Order("start_time DESC").
		Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) ListByHotel(db *gorm.DB, hotelID string) ([]models.Shift, error) {
	var shifts []models.Shift
	err := db.
		Where("hotel_id = ?", hotelID).
		Order("start_time DESC").
		Find(&shifts).Error
	return shifts, err
}

// MarkCompleted completes the shift guarded on is_completed = false, so
// two concurrent completions of the same shift resolve to one winner.
func (r *ShiftRepository) MarkCompleted(db *gorm.DB, id string, now time.Time) error {
	res := db.Model(&models.Shift{}).
		Where("id = ? AND is_completed = ?", id, false).
		Updates(map[string]interface{}{
			"is_completed": true,
			"completed_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrShiftStateConflict
	}
	return nil
}

// SetRatingForWorker writes the hotel's rating of the worker, guarded
// on the field being unset. Ratings are write-once.
func (r *ShiftRepository) SetRatingForWorker(db *gorm.DB, id string, rating int, review *string) error {
	res := db.Model(&models.Shift{}).
		Where("id = ? AND is_completed = ? AND rating_for_worker IS NULL", id, true).
		Updates(map[string]interface{}{
			"rating_for_worker": rating,
			"review_for_worker": review,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrShiftStateConflict
	}
	return nil
}

// SetRatingForHotel writes the worker's rating of the hotel under the
// same write-once guard.
func (r *ShiftRepository) SetRatingForHotel(db *gorm.DB, id string, rating int, review *string) error {
	res := db.Model(&models.Shift{}).
		Where("id = ? AND is_completed = ? AND rating_for_hotel IS NULL", id, true).
		Updates(map[string]interface{}{
			"rating_for_hotel": rating,
			"review_for_hotel": review,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrShiftStateConflict
	}
	return nil
}

// RatingsForWorker returns all ratings the worker has received across
// completed shifts, for average recalculation.
func (r *ShiftRepository) RatingsForWorker(db *gorm.DB, workerID string) ([]int, error) {
	var ratings []int
	err := db.Model(&models.Shift{}).
		Where("worker_id = ? AND is_completed = ? AND rating_for_worker IS NOT NULL", workerID, true).
		Pluck("rating_for_worker", &ratings).Error
	return ratings, err
}

// RatingsForHotel returns all ratings the hotel has received across
// completed shifts.
func (r *ShiftRepository) RatingsForHotel(db *gorm.DB, hotelID string) ([]int, error) {
	var ratings []int
	err := db.Model(&models.Shift{}).
		Where("hotel_id = ? AND is_completed = ? AND rating_for_hotel IS NOT NULL", hotelID, true).
		Pluck("rating_for_hotel", &ratings).Error
	return ratings, err
}
