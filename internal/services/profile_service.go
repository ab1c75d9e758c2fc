package services

import (
	"context"

	"gorm.io/gorm"

	"staffhub_backend/internal/models"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/services/dto"
	"staffhub_backend/pkg/apperrors"
)

// ProfileService covers the admin-driven verification lifecycle and
// the public reputation summaries. Registration itself happens in the
// external auth service; profiles arrive here already created.
type ProfileService struct {
	db         *gorm.DB
	workerRepo *repositories.WorkerRepository
	hotelRepo  *repositories.HotelRepository
}

func NewProfileService(
	db *gorm.DB,
	workerRepo *repositories.WorkerRepository,
	hotelRepo *repositories.HotelRepository,
) *ProfileService {
	return &ProfileService{
		db:         db,
		workerRepo: workerRepo,
		hotelRepo:  hotelRepo,
	}
}

// VerifyWorker moves a worker's verification status pending ->
// verified | declined. Re-verifying an already decided profile is an
// admin correction and allowed.
func (s *ProfileService) VerifyWorker(ctx context.Context, workerID string, status models.VerificationStatus) error {
	db := s.db.WithContext(ctx)
	if _, err := s.workerRepo.FindByID(db, workerID); err != nil {
		if err == repositories.ErrWorkerNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if err := s.workerRepo.UpdateVerification(db, workerID, status); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *ProfileService) VerifyHotel(ctx context.Context, hotelID string, status models.VerificationStatus) error {
	db := s.db.WithContext(ctx)
	if _, err := s.hotelRepo.FindByID(db, hotelID); err != nil {
		if err == repositories.ErrHotelNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if err := s.hotelRepo.UpdateVerification(db, hotelID, status); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

// SetWorkerTraining records training completion percentage; applying
// requires 100.
func (s *ProfileService) SetWorkerTraining(ctx context.Context, workerID string, progress int) error {
	db := s.db.WithContext(ctx)
	if _, err := s.workerRepo.FindByID(db, workerID); err != nil {
		if err == repositories.ErrWorkerNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if err := s.workerRepo.SetTrainingProgress(db, workerID, progress); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *ProfileService) SetWorkerBanned(ctx context.Context, workerID string, banned bool) error {
	db := s.db.WithContext(ctx)
	if _, err := s.workerRepo.FindByID(db, workerID); err != nil {
		if err == repositories.ErrWorkerNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if err := s.workerRepo.SetBanned(db, workerID, banned); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *ProfileService) GetWorkerProfile(ctx context.Context, workerID string) (*dto.WorkerProfileResponse, error) {
	worker, err := s.workerRepo.FindByID(s.db.WithContext(ctx), workerID)
	if err != nil {
		if err == repositories.ErrWorkerNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.WorkerProfileResponse{
		ID:                 worker.ID,
		Name:               worker.Name,
		VerificationStatus: worker.VerificationStatus,
		TrainingProgress:   worker.TrainingProgress,
		TotalHoursWorked:   worker.TotalHoursWorked,
		Tier:               worker.Tier,
		AvgRating:          worker.AvgRating,
	}, nil
}

func (s *ProfileService) GetHotelProfile(ctx context.Context, hotelID string) (*dto.HotelProfileResponse, error) {
	hotel, err := s.hotelRepo.FindByID(s.db.WithContext(ctx), hotelID)
	if err != nil {
		if err == repositories.ErrHotelNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.HotelProfileResponse{
		ID:                 hotel.ID,
		Name:               hotel.Name,
		VerificationStatus: hotel.VerificationStatus,
		TotalHoursHired:    hotel.TotalHoursHired,
		Tier:               hotel.Tier,
		AvgRating:          hotel.AvgRating,
		IsPremium:          hotel.IsPremium,
	}, nil
}
