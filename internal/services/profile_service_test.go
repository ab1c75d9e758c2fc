package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub_backend/internal/models"
)

func TestVerification(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("worker verification lifecycle", func(t *testing.T) {
		worker := env.createWorker(t, func(w *models.Worker) {
			w.VerificationStatus = models.VerificationPending
		})

		require.NoError(t, env.profiles.VerifyWorker(ctx, worker.ID, models.VerificationVerified))

		profile, err := env.profiles.GetWorkerProfile(ctx, worker.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VerificationVerified, profile.VerificationStatus)

		// Admin correction back to declined
		require.NoError(t, env.profiles.VerifyWorker(ctx, worker.ID, models.VerificationDeclined))

		profile, err = env.profiles.GetWorkerProfile(ctx, worker.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VerificationDeclined, profile.VerificationStatus)
	})

	t.Run("hotel verification", func(t *testing.T) {
		hotel := env.createHotel(t, func(h *models.Hotel) {
			h.VerificationStatus = models.VerificationPending
		})

		require.NoError(t, env.profiles.VerifyHotel(ctx, hotel.ID, models.VerificationVerified))

		profile, err := env.profiles.GetHotelProfile(ctx, hotel.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VerificationVerified, profile.VerificationStatus)
	})

	t.Run("unknown worker not found", func(t *testing.T) {
		err := env.profiles.VerifyWorker(ctx, "00000000-0000-0000-0000-000000000000", models.VerificationVerified)
		require.Error(t, err)
	})
}

func TestTrainingAndBan(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	worker := env.createWorker(t, func(w *models.Worker) {
		w.TrainingProgress = 0
	})

	require.NoError(t, env.profiles.SetWorkerTraining(ctx, worker.ID, 60))
	profile, err := env.profiles.GetWorkerProfile(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, profile.TrainingProgress)

	require.NoError(t, env.profiles.SetWorkerBanned(ctx, worker.ID, true))
	var got models.Worker
	require.NoError(t, env.db.First(&got, "id = ?", worker.ID).Error)
	assert.True(t, got.IsBanned)

	require.NoError(t, env.profiles.SetWorkerBanned(ctx, worker.ID, false))
	require.NoError(t, env.db.First(&got, "id = ?", worker.ID).Error)
	assert.False(t, got.IsBanned)
}
