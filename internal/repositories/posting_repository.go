package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"staffhub_backend/internal/models"
)

var ErrPostingNotFound = errors.New("posting not found")

type PostingRepository struct{}

func NewPostingRepository() *PostingRepository {
	return &PostingRepository{}
}

func (r *PostingRepository) Create(db *gorm.DB, posting *models.JobPosting) error {
	return db.Create(posting).Error
}

func (r *PostingRepository) FindByID(db *gorm.DB, id string) (*models.JobPosting, error) {
	var posting models.JobPosting
	if err := db.First(&posting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, err
	}
	return &posting, nil
}

// ListOpen returns postings still accepting applications: active, not
// filled, with remaining capacity and an end time in the future.
func (r *PostingRepository) ListOpen(db *gorm.DB, now time.Time) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := db.
		Where("is_active = ? AND is_filled = ? AND slots_open > 0 AND end_time > ?", true, false, now).
		Order("start_time ASC").
		Find(&postings).Error
	return postings, err
}

func (r *PostingRepository) ListByHotel(db *gorm.DB, hotelID string) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := db.
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&postings).Error
	return postings, err
}

// TryConsumeSlot decrements slots_open guarded on slots_open > 0 and
// reports whether this caller won the slot. Two accepts racing for the
// last slot resolve here: exactly one sees RowsAffected == 1.
func (r *PostingRepository) TryConsumeSlot(db *gorm.DB, id string) (bool, error) {
	res := db.Model(&models.JobPosting{}).
		Where("id = ? AND slots_open > 0", id).
		UpdateColumn("slots_open", gorm.Expr("slots_open - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkFilled flips is_filled/is_active together once slots_open hit 0.
func (r *PostingRepository) MarkFilled(db *gorm.DB, id string) error {
	return db.Model(&models.JobPosting{}).
		Where("id = ? AND slots_open = 0", id).
		UpdateColumns(map[string]interface{}{
			"is_filled": true,
			"is_active": false,
		}).Error
}

// DeactivateExpired deactivates unfilled postings whose end time has
// passed. Used by the background worker; the read path filters on
// end_time regardless, so stored state is presentation hygiene only.
func (r *PostingRepository) DeactivateExpired(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&models.JobPosting{}).
		Where("is_active = ? AND end_time < ?", true, now).
		UpdateColumn("is_active", false)
	return res.RowsAffected, res.Error
}
