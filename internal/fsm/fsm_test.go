package fsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"staffhub_backend/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.ApplicationStatus
		ok       bool
	}{
		{models.ApplicationPending, models.ApplicationAccepted, true},
		{models.ApplicationPending, models.ApplicationDeclined, true},
		{models.ApplicationPending, models.ApplicationCancelled, true},
		{models.ApplicationAccepted, models.ApplicationDeclined, false},
		{models.ApplicationAccepted, models.ApplicationCancelled, false},
		{models.ApplicationDeclined, models.ApplicationAccepted, false},
		{models.ApplicationCancelled, models.ApplicationPending, false},
		{models.ApplicationPending, models.ApplicationPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps the in-memory database alive for the test
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Application{}))
	return db
}

func TestApply(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	app := &models.Application{WorkerID: "w1", PostingID: "p1", Status: models.ApplicationPending}
	require.NoError(t, db.Create(app).Error)

	t.Run("pending to accepted", func(t *testing.T) {
		err := Apply(db, app.ID, models.ApplicationPending, models.ApplicationAccepted, nil, now)
		require.NoError(t, err)

		var got models.Application
		require.NoError(t, db.First(&got, "id = ?", app.ID).Error)
		assert.Equal(t, models.ApplicationAccepted, got.Status)
		require.NotNil(t, got.RespondedAt)
	})

	t.Run("second transition on the same row loses", func(t *testing.T) {
		err := Apply(db, app.ID, models.ApplicationPending, models.ApplicationDeclined, nil, now)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("illegal transition rejected before touching the row", func(t *testing.T) {
		err := Apply(db, app.ID, models.ApplicationAccepted, models.ApplicationDeclined, nil, now)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("decline records the reason", func(t *testing.T) {
		other := &models.Application{WorkerID: "w2", PostingID: "p1", Status: models.ApplicationPending}
		require.NoError(t, db.Create(other).Error)

		reason := models.DeclineReasonFilled
		err := Apply(db, other.ID, models.ApplicationPending, models.ApplicationDeclined, &reason, now)
		require.NoError(t, err)

		var got models.Application
		require.NoError(t, db.First(&got, "id = ?", other.ID).Error)
		assert.Equal(t, models.ApplicationDeclined, got.Status)
		require.NotNil(t, got.DeclineReason)
		assert.Equal(t, models.DeclineReasonFilled, *got.DeclineReason)
	})
}
