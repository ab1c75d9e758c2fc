package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"staffhub_backend/internal/cache"
	"staffhub_backend/internal/eligibility"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/services/dto"
	"staffhub_backend/pkg/apperrors"
)

type PostingService struct {
	db          *gorm.DB
	postingRepo *repositories.PostingRepository
	hotelRepo   *repositories.HotelRepository
	workerRepo  *repositories.WorkerRepository
	cache       *cache.PostingCache
}

func NewPostingService(
	db *gorm.DB,
	postingRepo *repositories.PostingRepository,
	hotelRepo *repositories.HotelRepository,
	workerRepo *repositories.WorkerRepository,
	postingCache *cache.PostingCache,
) *PostingService {
	return &PostingService{
		db:          db,
		postingRepo: postingRepo,
		hotelRepo:   hotelRepo,
		workerRepo:  workerRepo,
		cache:       postingCache,
	}
}

// CreatePosting opens a new posting for a verified hotel. The start
// must lie in the future; an end-of-day time at or before the start
// rolls the end date forward one day (overnight shifts).
func (s *PostingService) CreatePosting(ctx context.Context, hotelID string, req *dto.CreatePostingRequest) (*dto.CreatePostingResponse, error) {
	hotel, err := s.hotelRepo.FindByID(s.db.WithContext(ctx), hotelID)
	if err != nil {
		if err == repositories.ErrHotelNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if hotel.VerificationStatus != models.VerificationVerified {
		return nil, apperrors.ErrHotelNotVerified
	}

	date, start, end, hours, schedErr := buildShiftSchedule(req.ShiftDate, req.StartTime, req.EndTime)
	if schedErr != nil {
		return nil, schedErr
	}

	if !start.After(time.Now()) {
		return nil, apperrors.ErrStartNotInFuture
	}

	posting := &models.JobPosting{
		HotelID:    hotelID,
		Title:      req.Title,
		ShiftDate:  date,
		StartTime:  start,
		EndTime:    end,
		TotalHours: hours,
		HourlyPay:  req.HourlyPay,
		Location:   req.Location,
		TotalSlots: req.TotalSlots,
		SlotsOpen:  req.TotalSlots,
		IsActive:   true,
		IsFilled:   false,
	}

	if err := s.postingRepo.Create(s.db.WithContext(ctx), posting); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.cache.InvalidateOpenPostings(ctx)

	return &dto.CreatePostingResponse{PostingID: posting.ID}, nil
}

// ListVisiblePostings returns the open postings the worker is allowed
// to see. Minors never see night-window or over-length shifts; the
// filtering happens here, not at apply time.
func (s *PostingService) ListVisiblePostings(ctx context.Context, workerID string) (*dto.PostingListResponse, error) {
	worker, err := s.workerRepo.FindByID(s.db.WithContext(ctx), workerID)
	if err != nil {
		if err == repositories.ErrWorkerNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	now := time.Now()

	open := s.cache.GetOpenPostings(ctx)
	if open == nil {
		open, err = s.postingRepo.ListOpen(s.db.WithContext(ctx), now)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		s.cache.SetOpenPostings(ctx, open)
	}

	resp := &dto.PostingListResponse{Postings: []dto.PostingResponse{}}
	for i := range open {
		if !eligibility.CanViewPosting(worker, &open[i], now) {
			continue
		}
		resp.Postings = append(resp.Postings, buildPostingResponse(&open[i], now))
	}
	return resp, nil
}

func (s *PostingService) GetPosting(ctx context.Context, postingID string) (*dto.PostingResponse, error) {
	posting, err := s.postingRepo.FindByID(s.db.WithContext(ctx), postingID)
	if err != nil {
		if err == repositories.ErrPostingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	resp := buildPostingResponse(posting, time.Now())
	return &resp, nil
}

// ListHotelPostings returns all postings owned by the hotel, newest
// first, including filled and expired ones.
func (s *PostingService) ListHotelPostings(ctx context.Context, hotelID string) (*dto.PostingListResponse, error) {
	postings, err := s.postingRepo.ListByHotel(s.db.WithContext(ctx), hotelID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	now := time.Now()
	resp := &dto.PostingListResponse{Postings: []dto.PostingResponse{}}
	for i := range postings {
		resp.Postings = append(resp.Postings, buildPostingResponse(&postings[i], now))
	}
	return resp, nil
}

// buildShiftSchedule combines the posting date with start/end times of
// day in the server's canonical zone. If the end clock time is not
// after the start, the shift spans midnight and the end date advances
// one day. Identical times are rejected rather than treated as a
// 24-hour shift.
func buildShiftSchedule(dateStr, startStr, endStr string) (date, start, end time.Time, hours float64, err *apperrors.AppError) {
	day, parseErr := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if parseErr != nil {
		return date, start, end, 0, apperrors.NewBadRequestError("Invalid shift date")
	}
	startClock, parseErr := time.Parse("15:04", startStr)
	if parseErr != nil {
		return date, start, end, 0, apperrors.NewBadRequestError("Invalid start time")
	}
	endClock, parseErr := time.Parse("15:04", endStr)
	if parseErr != nil {
		return date, start, end, 0, apperrors.NewBadRequestError("Invalid end time")
	}

	start = time.Date(day.Year(), day.Month(), day.Day(), startClock.Hour(), startClock.Minute(), 0, 0, time.Local)
	end = time.Date(day.Year(), day.Month(), day.Day(), endClock.Hour(), endClock.Minute(), 0, 0, time.Local)

	if !end.After(start) {
		if end.Equal(start) {
			return date, start, end, 0, apperrors.ErrInvalidShiftTimes
		}
		end = end.AddDate(0, 0, 1)
	}

	return day, start, end, end.Sub(start).Hours(), nil
}

func buildPostingResponse(p *models.JobPosting, now time.Time) dto.PostingResponse {
	status := dto.PostingStatusOpen
	switch {
	case p.IsFilled:
		status = dto.PostingStatusFilled
	case p.Expired(now):
		status = dto.PostingStatusExpired
	case !p.IsActive:
		status = dto.PostingStatusInactive
	}

	return dto.PostingResponse{
		ID:         p.ID,
		HotelID:    p.HotelID,
		Title:      p.Title,
		ShiftDate:  p.ShiftDate,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		TotalHours: p.TotalHours,
		HourlyPay:  p.HourlyPay,
		Location:   p.Location,
		TotalSlots: p.TotalSlots,
		SlotsOpen:  p.SlotsOpen,
		Status:     status,
	}
}
