package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub_backend/internal/models"
	"staffhub_backend/internal/services/dto"
	"staffhub_backend/pkg/apperrors"
)

// endedShift seeds a shift whose end time has already passed.
func endedShift(env *testEnv, t *testing.T, workerID, hotelID string, hours float64) *models.Shift {
	t.Helper()
	posting := env.createPosting(t, hotelID, func(p *models.JobPosting) {
		p.StartTime = time.Now().Add(-time.Duration(hours+1) * time.Hour)
		p.EndTime = p.StartTime.Add(time.Duration(hours * float64(time.Hour)))
		p.TotalHours = hours
		p.SlotsOpen = 0
		p.IsFilled = true
		p.IsActive = false
	})
	app := env.createApplication(t, workerID, posting.ID, func(a *models.Application) {
		a.Status = models.ApplicationAccepted
	})
	return env.createShift(t, app, posting)
}

func TestMarkComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("completion accrues hours to both sides", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		hotel := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 8)

		resp, err := env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		require.NoError(t, err)
		assert.Nil(t, resp.WorkerPromotion)
		assert.Nil(t, resp.HotelPromotion)

		var gotShift models.Shift
		require.NoError(t, env.db.First(&gotShift, "id = ?", shift.ID).Error)
		assert.True(t, gotShift.IsCompleted)
		require.NotNil(t, gotShift.CompletedAt)

		var gotWorker models.Worker
		require.NoError(t, env.db.First(&gotWorker, "id = ?", worker.ID).Error)
		assert.InDelta(t, 8.0, gotWorker.TotalHoursWorked, 0.001)

		var gotHotel models.Hotel
		require.NoError(t, env.db.First(&gotHotel, "id = ?", hotel.ID).Error)
		assert.InDelta(t, 8.0, gotHotel.TotalHoursHired, 0.001)
	})

	t.Run("crossing the gold threshold promotes", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t, func(w *models.Worker) {
			w.TotalHoursWorked = 49.5
		})
		hotel := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 1)

		resp, err := env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		require.NoError(t, err)
		require.NotNil(t, resp.WorkerPromotion)
		assert.Equal(t, models.TierSilver, resp.WorkerPromotion.From)
		assert.Equal(t, models.TierGold, resp.WorkerPromotion.To)

		var gotWorker models.Worker
		require.NoError(t, env.db.First(&gotWorker, "id = ?", worker.ID).Error)
		assert.Equal(t, models.TierGold, gotWorker.Tier)
		assert.InDelta(t, 50.5, gotWorker.TotalHoursWorked, 0.001)
	})

	t.Run("staying under the threshold does not promote", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t, func(w *models.Worker) {
			w.TotalHoursWorked = 49.5
		})
		hotel := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 0.4)

		resp, err := env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		require.NoError(t, err)
		assert.Nil(t, resp.WorkerPromotion)

		var gotWorker models.Worker
		require.NoError(t, env.db.First(&gotWorker, "id = ?", worker.ID).Error)
		assert.Equal(t, models.TierSilver, gotWorker.Tier)
	})

	t.Run("completion before the shift ends refused", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		hotel := env.createHotel(t)
		posting := env.createPosting(t, hotel.ID)
		app := env.createApplication(t, worker.ID, posting.ID, func(a *models.Application) {
			a.Status = models.ApplicationAccepted
		})
		shift := env.createShift(t, app, posting)

		_, err := env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		assert.Equal(t, apperrors.ErrShiftNotEnded, err)

		var gotWorker models.Worker
		require.NoError(t, env.db.First(&gotWorker, "id = ?", worker.ID).Error)
		assert.Zero(t, gotWorker.TotalHoursWorked, "no hours accrue on a refused completion")
	})

	t.Run("double completion refused", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		hotel := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 8)

		_, err := env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		require.NoError(t, err)

		_, err = env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		assert.Equal(t, apperrors.ErrShiftAlreadyCompleted, err)

		// Hours accrued exactly once
		var gotWorker models.Worker
		require.NoError(t, env.db.First(&gotWorker, "id = ?", worker.ID).Error)
		assert.InDelta(t, 8.0, gotWorker.TotalHoursWorked, 0.001)
	})

	t.Run("only the owning hotel may complete", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		hotel := env.createHotel(t)
		other := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 8)

		_, err := env.shifts.MarkComplete(ctx, other.ID, shift.ID)
		assert.Equal(t, apperrors.ErrNotOwner, err)
	})
}

func TestRateWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("rating recalculates the average", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		hotel := env.createHotel(t)

		first := endedShift(env, t, worker.ID, hotel.ID, 8)
		second := endedShift(env, t, worker.ID, hotel.ID, 6)
		_, err := env.shifts.MarkComplete(ctx, hotel.ID, first.ID)
		require.NoError(t, err)
		_, err = env.shifts.MarkComplete(ctx, hotel.ID, second.ID)
		require.NoError(t, err)

		require.NoError(t, env.shifts.RateWorker(ctx, hotel.ID, first.ID, &dto.RateShiftRequest{Rating: 5}))

		var gotWorker models.Worker
		require.NoError(t, env.db.First(&gotWorker, "id = ?", worker.ID).Error)
		require.NotNil(t, gotWorker.AvgRating)
		assert.InDelta(t, 5.0, *gotWorker.AvgRating, 0.001)

		require.NoError(t, env.shifts.RateWorker(ctx, hotel.ID, second.ID, &dto.RateShiftRequest{Rating: 4}))

		require.NoError(t, env.db.First(&gotWorker, "id = ?", worker.ID).Error)
		require.NotNil(t, gotWorker.AvgRating)
		assert.InDelta(t, 4.5, *gotWorker.AvgRating, 0.001)
	})

	t.Run("rating is write-once", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		hotel := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 8)
		_, err := env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		require.NoError(t, err)

		require.NoError(t, env.shifts.RateWorker(ctx, hotel.ID, shift.ID, &dto.RateShiftRequest{Rating: 3}))

		err = env.shifts.RateWorker(ctx, hotel.ID, shift.ID, &dto.RateShiftRequest{Rating: 5})
		assert.Equal(t, apperrors.ErrAlreadyRated, err)

		var gotWorker models.Worker
		require.NoError(t, env.db.First(&gotWorker, "id = ?", worker.ID).Error)
		require.NotNil(t, gotWorker.AvgRating)
		assert.InDelta(t, 3.0, *gotWorker.AvgRating, 0.001)
	})

	t.Run("incomplete shift cannot be rated", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		hotel := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 8)

		err := env.shifts.RateWorker(ctx, hotel.ID, shift.ID, &dto.RateShiftRequest{Rating: 5})
		assert.Equal(t, apperrors.ErrShiftNotCompleted, err)
	})

	t.Run("rating outside one to five refused", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		hotel := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 8)
		_, err := env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		require.NoError(t, err)

		err = env.shifts.RateWorker(ctx, hotel.ID, shift.ID, &dto.RateShiftRequest{Rating: 6})
		assert.Equal(t, apperrors.ErrRatingOutOfRange, err)
	})
}

func TestRateHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("worker rates the hotel independently of the hotel's rating", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		hotel := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 8)
		_, err := env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		require.NoError(t, err)

		require.NoError(t, env.shifts.RateHotel(ctx, worker.ID, shift.ID, &dto.RateShiftRequest{Rating: 2}))

		var gotHotel models.Hotel
		require.NoError(t, env.db.First(&gotHotel, "id = ?", hotel.ID).Error)
		require.NotNil(t, gotHotel.AvgRating)
		assert.InDelta(t, 2.0, *gotHotel.AvgRating, 0.001)

		// The hotel side is still open
		require.NoError(t, env.shifts.RateWorker(ctx, hotel.ID, shift.ID, &dto.RateShiftRequest{Rating: 4}))
	})

	t.Run("only the shift's worker may rate", func(t *testing.T) {
		env := newTestEnv(t)
		worker := env.createWorker(t)
		other := env.createWorker(t)
		hotel := env.createHotel(t)
		shift := endedShift(env, t, worker.ID, hotel.ID, 8)
		_, err := env.shifts.MarkComplete(ctx, hotel.ID, shift.ID)
		require.NoError(t, err)

		err = env.shifts.RateHotel(ctx, other.ID, shift.ID, &dto.RateShiftRequest{Rating: 5})
		assert.Equal(t, apperrors.ErrNotOwner, err)
	})
}
