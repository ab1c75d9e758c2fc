package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"staffhub_backend/internal/models"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists for this posting")
)

type ApplicationRepository struct{}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{}
}

// Create inserts the application. The unique (worker, posting) index is
// the authoritative duplicate guard; a racing second apply surfaces
// here as ErrApplicationAlreadyExists even when the pre-check passed.
func (r *ApplicationRepository) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepository) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	if err := db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) Exists(db *gorm.DB, workerID, postingID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("worker_id = ? AND posting_id = ?", workerID, postingID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepository) ListByWorker(db *gorm.DB, workerID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) ListByPosting(db *gorm.DB, postingID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.
		Where("posting_id = ?", postingID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

// DeclineAllPending declines every still-pending sibling application on
// a posting in one statement. Runs inside the accept transaction so the
// cascade is atomic with the slot decrement.
func (r *ApplicationRepository) DeclineAllPending(db *gorm.DB, postingID, reason string, now time.Time) (int64, error) {
	res := db.Model(&models.Application{}).
		Where("posting_id = ? AND status = ?", postingID, models.ApplicationPending).
		Updates(map[string]interface{}{
			"status":         models.ApplicationDeclined,
			"decline_reason": reason,
			"responded_at":   now,
		})
	return res.RowsAffected, res.Error
}
