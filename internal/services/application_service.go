package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"staffhub_backend/internal/cache"
	"staffhub_backend/internal/eligibility"
	"staffhub_backend/internal/fsm"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/queue"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/services/dto"
	"staffhub_backend/pkg/apperrors"
)

type ApplicationService struct {
	db              *gorm.DB
	applicationRepo *repositories.ApplicationRepository
	postingRepo     *repositories.PostingRepository
	workerRepo      *repositories.WorkerRepository
	shiftRepo       *repositories.ShiftRepository
	cache           *cache.PostingCache
	publisher       *queue.Publisher
}

func NewApplicationService(
	db *gorm.DB,
	applicationRepo *repositories.ApplicationRepository,
	postingRepo *repositories.PostingRepository,
	workerRepo *repositories.WorkerRepository,
	shiftRepo *repositories.ShiftRepository,
	postingCache *cache.PostingCache,
	publisher *queue.Publisher,
) *ApplicationService {
	return &ApplicationService{
		db:              db,
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
		workerRepo:      workerRepo,
		shiftRepo:       shiftRepo,
		cache:           postingCache,
		publisher:       publisher,
	}
}

// Apply submits a worker's application to a posting after the
// eligibility gate passes. The unique index backs up the duplicate
// pre-check, and the capacity check reads the same counter the accept
// path decrements, so a worker racing a final acceptance is refused.
func (s *ApplicationService) Apply(ctx context.Context, workerID, postingID string, req *dto.ApplyRequest) (*dto.ApplyResponse, error) {
	db := s.db.WithContext(ctx)

	worker, err := s.workerRepo.FindByID(db, workerID)
	if err != nil {
		if err == repositories.ErrWorkerNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	posting, err := s.postingRepo.FindByID(db, postingID)
	if err != nil {
		if err == repositories.ErrPostingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	hasExisting, err := s.applicationRepo.Exists(db, workerID, postingID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if gateErr := eligibility.CanApply(worker, posting, hasExisting, time.Now()); gateErr != nil {
		return nil, gateErr
	}

	app := &models.Application{
		WorkerID:  workerID,
		PostingID: postingID,
		Status:    models.ApplicationPending,
		Message:   req.Message,
	}

	if err := s.applicationRepo.Create(db, app); err != nil {
		if err == repositories.ErrApplicationAlreadyExists {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.ApplyResponse{ApplicationID: app.ID}, nil
}

// Cancel withdraws the worker's own application; only PENDING
// applications can be cancelled.
func (s *ApplicationService) Cancel(ctx context.Context, workerID, applicationID string) error {
	db := s.db.WithContext(ctx)

	app, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}

	if app.WorkerID != workerID {
		return apperrors.ErrNotOwner
	}
	if app.Status != models.ApplicationPending {
		return apperrors.ErrApplicationNotPending
	}

	if err := fsm.Apply(db, app.ID, models.ApplicationPending, models.ApplicationCancelled, nil, time.Now()); err != nil {
		if err == fsm.ErrConflict {
			return apperrors.ErrApplicationNotPending
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// Accept confirms a worker for the posting. The slot decrement, shift
// creation, status transition and — when the last slot went — the
// posting close plus cascade-decline of sibling pending applications
// all commit or roll back as one transaction.
func (s *ApplicationService) Accept(ctx context.Context, hotelID, applicationID string) (*dto.AcceptApplicationResponse, error) {
	now := time.Now()

	var (
		shiftID       string
		filledEvent   *queue.PostingFilledEvent
		resultPosting *models.JobPosting
	)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		app, err := s.applicationRepo.FindByID(tx, applicationID)
		if err != nil {
			if err == repositories.ErrApplicationNotFound {
				return apperrors.ErrNotFound(err)
			}
			return err
		}

		posting, err := s.postingRepo.FindByID(tx, app.PostingID)
		if err != nil {
			return err
		}

		if posting.HotelID != hotelID {
			return apperrors.ErrNotOwner
		}
		if posting.IsFilled {
			return apperrors.ErrPostingFilled
		}
		if app.Status != models.ApplicationPending {
			return apperrors.ErrApplicationNotPending
		}

		// Conditional decrement: the losing side of a race for the
		// last slot sees no row updated and fails as "filled".
		won, err := s.postingRepo.TryConsumeSlot(tx, posting.ID)
		if err != nil {
			return err
		}
		if !won {
			return apperrors.ErrPostingFilled
		}

		if err := fsm.Apply(tx, app.ID, models.ApplicationPending, models.ApplicationAccepted, nil, now); err != nil {
			if err == fsm.ErrConflict {
				return apperrors.ErrApplicationConflict
			}
			return err
		}

		// Denormalize the posting's current schedule and pay: later
		// posting edits never touch a confirmed shift.
		shift := &models.Shift{
			ApplicationID: app.ID,
			PostingID:     posting.ID,
			WorkerID:      app.WorkerID,
			HotelID:       posting.HotelID,
			ShiftDate:     posting.ShiftDate,
			StartTime:     posting.StartTime,
			EndTime:       posting.EndTime,
			TotalHours:    posting.TotalHours,
			HourlyPay:     posting.HourlyPay,
			Location:      posting.Location,
		}
		if err := s.shiftRepo.Create(tx, shift); err != nil {
			return err
		}
		shiftID = shift.ID

		updated, err := s.postingRepo.FindByID(tx, posting.ID)
		if err != nil {
			return err
		}
		resultPosting = updated

		if updated.SlotsOpen == 0 {
			if err := s.postingRepo.MarkFilled(tx, posting.ID); err != nil {
				return err
			}
			declined, err := s.applicationRepo.DeclineAllPending(tx, posting.ID, models.DeclineReasonFilled, now)
			if err != nil {
				return err
			}
			filledEvent = &queue.PostingFilledEvent{
				PostingID:       posting.ID,
				HotelID:         posting.HotelID,
				DeclinedPending: declined,
				FilledAt:        now,
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, wrapServiceError(txErr)
	}

	if filledEvent != nil {
		s.cache.InvalidateOpenPostings(ctx)
		s.publisher.Publish(ctx, "posting.filled", *filledEvent)
	} else if resultPosting != nil {
		// Remaining capacity changed; drop the cached open list.
		s.cache.InvalidateOpenPostings(ctx)
	}

	return &dto.AcceptApplicationResponse{ShiftID: shiftID}, nil
}

// Decline refuses a pending application. The eligibility gate enforces
// ownership and the 12-hour lock before the shift start; slots are
// untouched since only acceptance consumes capacity.
func (s *ApplicationService) Decline(ctx context.Context, hotelID, applicationID string, req *dto.DeclineApplicationRequest) error {
	db := s.db.WithContext(ctx)

	app, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}

	posting, err := s.postingRepo.FindByID(db, app.PostingID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}

	if gateErr := eligibility.CanDecline(hotelID, posting, time.Now()); gateErr != nil {
		return gateErr
	}
	if app.Status != models.ApplicationPending {
		return apperrors.ErrApplicationNotPending
	}

	var reason *string
	if req != nil && req.Reason != "" {
		reason = &req.Reason
	}

	if err := fsm.Apply(db, app.ID, models.ApplicationPending, models.ApplicationDeclined, reason, time.Now()); err != nil {
		if err == fsm.ErrConflict {
			return apperrors.ErrApplicationNotPending
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// ListWorkerApplications returns the worker's own applications.
func (s *ApplicationService) ListWorkerApplications(ctx context.Context, workerID string) (*dto.ApplicationListResponse, error) {
	apps, err := s.applicationRepo.ListByWorker(s.db.WithContext(ctx), workerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildApplicationList(apps), nil
}

// ListPostingApplications returns all applications on a posting for its
// owning hotel.
func (s *ApplicationService) ListPostingApplications(ctx context.Context, hotelID, postingID string) (*dto.ApplicationListResponse, error) {
	db := s.db.WithContext(ctx)

	posting, err := s.postingRepo.FindByID(db, postingID)
	if err != nil {
		if err == repositories.ErrPostingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if posting.HotelID != hotelID {
		return nil, apperrors.ErrNotOwner
	}

	apps, err := s.applicationRepo.ListByPosting(db, postingID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildApplicationList(apps), nil
}

func buildApplicationList(apps []models.Application) *dto.ApplicationListResponse {
	resp := &dto.ApplicationListResponse{Applications: []dto.ApplicationResponse{}}
	for i := range apps {
		a := &apps[i]
		resp.Applications = append(resp.Applications, dto.ApplicationResponse{
			ID:            a.ID,
			WorkerID:      a.WorkerID,
			PostingID:     a.PostingID,
			Status:        a.Status,
			Message:       a.Message,
			DeclineReason: a.DeclineReason,
			RespondedAt:   a.RespondedAt,
			CreatedAt:     a.CreatedAt,
		})
	}
	return resp
}
