package repositories

import (
	"errors"

	"gorm.io/gorm"

	"staffhub_backend/internal/models"
)

var ErrWorkerNotFound = errors.New("worker not found")

// WorkerRepository is stateless; every method receives the *gorm.DB it
// should run on so services can pass either the pool or a transaction.
type WorkerRepository struct{}

func NewWorkerRepository() *WorkerRepository {
	return &WorkerRepository{}
}

func (r *WorkerRepository) Create(db *gorm.DB, worker *models.Worker) error {
	return db.Create(worker).Error
}

func (r *WorkerRepository) FindByID(db *gorm.DB, id string) (*models.Worker, error) {
	var worker models.Worker
	if err := db.First(&worker, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepository) UpdateVerification(db *gorm.DB, id string, status models.VerificationStatus) error {
	return db.Model(&models.Worker{}).Where("id = ?", id).
		UpdateColumn("verification_status", status).Error
}

func (r *WorkerRepository) SetTrainingProgress(db *gorm.DB, id string, progress int) error {
	return db.Model(&models.Worker{}).Where("id = ?", id).
		UpdateColumn("training_progress", progress).Error
}

func (r *WorkerRepository) SetBanned(db *gorm.DB, id string, banned bool) error {
	return db.Model(&models.Worker{}).Where("id = ?", id).
		UpdateColumn("is_banned", banned).Error
}

// AddHoursWorked increments accumulated hours atomically in the
// database, never via read-then-write.
func (r *WorkerRepository) AddHoursWorked(db *gorm.DB, id string, hours float64) error {
	return db.Model(&models.Worker{}).Where("id = ?", id).
		UpdateColumn("total_hours_worked", gorm.Expr("total_hours_worked + ?", hours)).Error
}

func (r *WorkerRepository) UpdateTier(db *gorm.DB, id string, t models.Tier) error {
	return db.Model(&models.Worker{}).Where("id = ?", id).
		UpdateColumn("tier", t).Error
}

func (r *WorkerRepository) UpdateAvgRating(db *gorm.DB, id string, avg *float64) error {
	return db.Model(&models.Worker{}).Where("id = ?", id).
		UpdateColumn("avg_rating", avg).Error
}
