// Package eligibility holds the pure predicates deciding whether a
// worker or hotel may perform an action. Nothing here touches storage;
// callers load the entities and pass them in together with the current
// time. Every refusal is a distinct apperrors value so handlers can
// surface the exact unmet condition.
package eligibility

import (
	"time"

	"staffhub_backend/internal/models"
	"staffhub_backend/internal/rules"
	"staffhub_backend/pkg/apperrors"
)

// RatingSide selects which write-once rating field an actor targets.
type RatingSide string

const (
	// RateWorker is the hotel rating the worker.
	RateWorker RatingSide = "worker"
	// RateHotel is the worker rating the hotel.
	RateHotel RatingSide = "hotel"
)

// CanApply decides whether worker may apply to posting. hasExisting is
// the result of the duplicate lookup for the (worker, posting) pair.
func CanApply(worker *models.Worker, posting *models.JobPosting, hasExisting bool, now time.Time) *apperrors.AppError {
	if worker.IsBanned || !worker.IsActive {
		return apperrors.ErrWorkerSuspended
	}
	if worker.VerificationStatus != models.VerificationVerified {
		return apperrors.ErrWorkerNotVerified
	}
	if worker.TrainingProgress < 100 {
		return apperrors.ErrTrainingIncomplete
	}
	if !posting.IsActive || posting.IsFilled || now.After(posting.EndTime) {
		return apperrors.ErrPostingClosed
	}
	if posting.SlotsOpen <= 0 {
		return apperrors.ErrPostingFilled
	}
	if hasExisting {
		return apperrors.ErrDuplicateApplication
	}
	return nil
}

// CanViewPosting reports whether the posting belongs in the worker's
// visible listing. Minors never see shifts ending in the night window
// or exceeding the minor duration cap; the two checks are independent
// rules, not one combined overnight rule.
func CanViewPosting(worker *models.Worker, posting *models.JobPosting, now time.Time) bool {
	if !rules.IsMinor(worker.DateOfBirth, now) {
		return true
	}
	if rules.EndsInNightWindow(posting.EndTime) {
		return false
	}
	if rules.ExceedsMinorDuration(posting.TotalHours) {
		return false
	}
	return true
}

// CanDecline decides whether the hotel may decline an application to
// the given posting. A lock refusal is distinct from an ownership one.
func CanDecline(hotelID string, posting *models.JobPosting, now time.Time) *apperrors.AppError {
	if posting.HotelID != hotelID {
		return apperrors.ErrNotOwner
	}
	if rules.WithinDeclineLock(posting.StartTime, now) {
		return apperrors.ErrDeclineLocked
	}
	return nil
}

// CanCompleteShift decides whether the hotel may mark the shift done.
func CanCompleteShift(hotelID string, shift *models.Shift, now time.Time) *apperrors.AppError {
	if shift.HotelID != hotelID {
		return apperrors.ErrNotOwner
	}
	if shift.EndTime.After(now) {
		return apperrors.ErrShiftNotEnded
	}
	if shift.IsCompleted {
		return apperrors.ErrShiftAlreadyCompleted
	}
	return nil
}

// CanRate decides whether the given side of the shift may still be
// rated with the given value. Completion is required, each side rates
// at most once, and the value must be within [1, 5].
func CanRate(side RatingSide, shift *models.Shift, rating int) *apperrors.AppError {
	if !shift.IsCompleted {
		return apperrors.ErrShiftNotCompleted
	}
	switch side {
	case RateWorker:
		if shift.RatingForWorker != nil {
			return apperrors.ErrAlreadyRated
		}
	case RateHotel:
		if shift.RatingForHotel != nil {
			return apperrors.ErrAlreadyRated
		}
	}
	if rating < 1 || rating > 5 {
		return apperrors.ErrRatingOutOfRange
	}
	return nil
}
