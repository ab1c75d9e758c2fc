package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"staffhub_backend/internal/eligibility"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/queue"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/services/dto"
	"staffhub_backend/internal/tier"
	"staffhub_backend/pkg/apperrors"
)

type ShiftService struct {
	db         *gorm.DB
	shiftRepo  *repositories.ShiftRepository
	workerRepo *repositories.WorkerRepository
	hotelRepo  *repositories.HotelRepository
	publisher  *queue.Publisher
}

func NewShiftService(
	db *gorm.DB,
	shiftRepo *repositories.ShiftRepository,
	workerRepo *repositories.WorkerRepository,
	hotelRepo *repositories.HotelRepository,
	publisher *queue.Publisher,
) *ShiftService {
	return &ShiftService{
		db:         db,
		shiftRepo:  shiftRepo,
		workerRepo: workerRepo,
		hotelRepo:  hotelRepo,
		publisher:  publisher,
	}
}

// MarkComplete completes a shift after its end time. The shift's hours
// accrue to the worker (hours worked) and the hotel (hours hired) in
// the same transaction, and tier recalculation runs on the freshly
// incremented totals. Promotions are returned for display.
func (s *ShiftService) MarkComplete(ctx context.Context, hotelID, shiftID string) (*dto.CompleteShiftResponse, error) {
	now := time.Now()

	var (
		workerPromotion *tier.Promotion
		hotelPromotion  *tier.Promotion
		completedEvent  *queue.ShiftCompletedEvent
		workerID        string
	)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shift, err := s.shiftRepo.FindByID(tx, shiftID)
		if err != nil {
			if err == repositories.ErrShiftNotFound {
				return apperrors.ErrNotFound(err)
			}
			return err
		}

		if gateErr := eligibility.CanCompleteShift(hotelID, shift, now); gateErr != nil {
			return gateErr
		}

		if err := s.shiftRepo.MarkCompleted(tx, shift.ID, now); err != nil {
			if err == repositories.ErrShiftStateConflict {
				return apperrors.ErrShiftAlreadyCompleted
			}
			return err
		}

		workerPromotion, err = s.accrueWorkerHours(tx, shift.WorkerID, shift.TotalHours)
		if err != nil {
			return err
		}
		hotelPromotion, err = s.accrueHotelHours(tx, shift.HotelID, shift.TotalHours)
		if err != nil {
			return err
		}

		workerID = shift.WorkerID
		completedEvent = &queue.ShiftCompletedEvent{
			ShiftID:     shift.ID,
			WorkerID:    shift.WorkerID,
			HotelID:     shift.HotelID,
			TotalHours:  shift.TotalHours,
			CompletedAt: now,
		}
		return nil
	})
	if txErr != nil {
		return nil, wrapServiceError(txErr)
	}

	s.publisher.Publish(ctx, "shift.completed", *completedEvent)
	if workerPromotion != nil {
		s.publisher.Publish(ctx, "tier.promoted", queue.TierPromotedEvent{
			ParticipantID: workerID,
			Role:          string(models.RoleWorker),
			FromTier:      string(workerPromotion.From),
			ToTier:        string(workerPromotion.To),
		})
	}
	if hotelPromotion != nil {
		s.publisher.Publish(ctx, "tier.promoted", queue.TierPromotedEvent{
			ParticipantID: hotelID,
			Role:          string(models.RoleHotel),
			FromTier:      string(hotelPromotion.From),
			ToTier:        string(hotelPromotion.To),
		})
	}

	return &dto.CompleteShiftResponse{
		WorkerPromotion: workerPromotion,
		HotelPromotion:  hotelPromotion,
	}, nil
}

// RateWorker records the hotel's write-once rating of the worker and
// recalculates the worker's average across all rated completed shifts.
func (s *ShiftService) RateWorker(ctx context.Context, hotelID, shiftID string, req *dto.RateShiftRequest) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shift, err := s.shiftRepo.FindByID(tx, shiftID)
		if err != nil {
			if err == repositories.ErrShiftNotFound {
				return apperrors.ErrNotFound(err)
			}
			return err
		}

		if shift.HotelID != hotelID {
			return apperrors.ErrNotOwner
		}
		if gateErr := eligibility.CanRate(eligibility.RateWorker, shift, req.Rating); gateErr != nil {
			return gateErr
		}

		if err := s.shiftRepo.SetRatingForWorker(tx, shift.ID, req.Rating, req.Review); err != nil {
			if err == repositories.ErrShiftStateConflict {
				return apperrors.ErrAlreadyRated
			}
			return err
		}

		ratings, err := s.shiftRepo.RatingsForWorker(tx, shift.WorkerID)
		if err != nil {
			return err
		}
		return s.workerRepo.UpdateAvgRating(tx, shift.WorkerID, tier.Average(ratings))
	})
	return wrapServiceError(txErr)
}

// RateHotel records the worker's write-once rating of the hotel and
// recalculates the hotel's average.
func (s *ShiftService) RateHotel(ctx context.Context, workerID, shiftID string, req *dto.RateShiftRequest) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shift, err := s.shiftRepo.FindByID(tx, shiftID)
		if err != nil {
			if err == repositories.ErrShiftNotFound {
				return apperrors.ErrNotFound(err)
			}
			return err
		}

		if shift.WorkerID != workerID {
			return apperrors.ErrNotOwner
		}
		if gateErr := eligibility.CanRate(eligibility.RateHotel, shift, req.Rating); gateErr != nil {
			return gateErr
		}

		if err := s.shiftRepo.SetRatingForHotel(tx, shift.ID, req.Rating, req.Review); err != nil {
			if err == repositories.ErrShiftStateConflict {
				return apperrors.ErrAlreadyRated
			}
			return err
		}

		ratings, err := s.shiftRepo.RatingsForHotel(tx, shift.HotelID)
		if err != nil {
			return err
		}
		return s.hotelRepo.UpdateAvgRating(tx, shift.HotelID, tier.Average(ratings))
	})
	return wrapServiceError(txErr)
}

func (s *ShiftService) ListWorkerShifts(ctx context.Context, workerID string) (*dto.ShiftListResponse, error) {
	shifts, err := s.shiftRepo.ListByWorker(s.db.WithContext(ctx), workerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildShiftList(shifts), nil
}

func (s *ShiftService) ListHotelShifts(ctx context.Context, hotelID string) (*dto.ShiftListResponse, error) {
	shifts, err := s.shiftRepo.ListByHotel(s.db.WithContext(ctx), hotelID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildShiftList(shifts), nil
}

// accrueWorkerHours adds the shift hours to the worker inside tx and
// promotes the stored tier when the new total crosses a threshold.
func (s *ShiftService) accrueWorkerHours(tx *gorm.DB, workerID string, hours float64) (*tier.Promotion, error) {
	if err := s.workerRepo.AddHoursWorked(tx, workerID, hours); err != nil {
		return nil, err
	}
	worker, err := s.workerRepo.FindByID(tx, workerID)
	if err != nil {
		return nil, err
	}
	promotion := tier.Promote(worker.Tier, worker.TotalHoursWorked)
	if promotion == nil {
		return nil, nil
	}
	if err := s.workerRepo.UpdateTier(tx, workerID, promotion.To); err != nil {
		return nil, err
	}
	return promotion, nil
}

// accrueHotelHours mirrors accrueWorkerHours for hours hired.
func (s *ShiftService) accrueHotelHours(tx *gorm.DB, hotelID string, hours float64) (*tier.Promotion, error) {
	if err := s.hotelRepo.AddHoursHired(tx, hotelID, hours); err != nil {
		return nil, err
	}
	hotel, err := s.hotelRepo.FindByID(tx, hotelID)
	if err != nil {
		return nil, err
	}
	promotion := tier.Promote(hotel.Tier, hotel.TotalHoursHired)
	if promotion == nil {
		return nil, nil
	}
	if err := s.hotelRepo.UpdateTier(tx, hotelID, promotion.To); err != nil {
		return nil, err
	}
	return promotion, nil
}

func buildShiftList(shifts []models.Shift) *dto.ShiftListResponse {
	resp := &dto.ShiftListResponse{Shifts: []dto.ShiftResponse{}}
	for i := range shifts {
		sh := &shifts[i]
		resp.Shifts = append(resp.Shifts, dto.ShiftResponse{
			ID:              sh.ID,
			PostingID:       sh.PostingID,
			WorkerID:        sh.WorkerID,
			HotelID:         sh.HotelID,
			ShiftDate:       sh.ShiftDate,
			StartTime:       sh.StartTime,
			EndTime:         sh.EndTime,
			TotalHours:      sh.TotalHours,
			HourlyPay:       sh.HourlyPay,
			Location:        sh.Location,
			IsCompleted:     sh.IsCompleted,
			CompletedAt:     sh.CompletedAt,
			IsPaid:          sh.IsPaid,
			RatingForWorker: sh.RatingForWorker,
			RatingForHotel:  sh.RatingForHotel,
		})
	}
	return resp
}
