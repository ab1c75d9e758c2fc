package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"staffhub_backend/internal/models"
	"staffhub_backend/internal/repositories"
)

// testEnv wires every service against one in-memory database, with the
// cache and event publisher disabled.
type testEnv struct {
	db           *gorm.DB
	postings     *PostingService
	applications *ApplicationService
	shifts       *ShiftService
	profiles     *ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
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

	require.NoError(t, db.AutoMigrate(
		&models.Worker{},
		&models.Hotel{},
		&models.JobPosting{},
		&models.Application{},
		&models.Shift{},
	))

	workerRepo := repositories.NewWorkerRepository()
	hotelRepo := repositories.NewHotelRepository()
	postingRepo := repositories.NewPostingRepository()
	applicationRepo := repositories.NewApplicationRepository()
	shiftRepo := repositories.NewShiftRepository()

	return &testEnv{
		db:           db,
		postings:     NewPostingService(db, postingRepo, hotelRepo, workerRepo, nil),
		applications: NewApplicationService(db, applicationRepo, postingRepo, workerRepo, shiftRepo, nil, nil),
		shifts:       NewShiftService(db, shiftRepo, workerRepo, hotelRepo, nil),
		profiles:     NewProfileService(db, workerRepo, hotelRepo),
	}
}

func (e *testEnv) createWorker(t *testing.T, mutate ...func(*models.Worker)) *models.Worker {
	t.Helper()
	w := &models.Worker{
		Name:               "Test Worker",
		Email:              "worker-" + randomSuffix() + "@example.com",
		DateOfBirth:        time.Now().AddDate(-25, 0, 0),
		VerificationStatus: models.VerificationVerified,
		TrainingProgress:   100,
		Tier:               models.TierSilver,
		IsActive:           true,
	}
	for _, m := range mutate {
		m(w)
	}
	require.NoError(t, e.db.Create(w).Error)
	return w
}

func (e *testEnv) createHotel(t *testing.T, mutate ...func(*models.Hotel)) *models.Hotel {
	t.Helper()
	h := &models.Hotel{
		Name:               "Test Hotel",
		Email:              "hotel-" + randomSuffix() + "@example.com",
		VerificationStatus: models.VerificationVerified,
		Tier:               models.TierSilver,
	}
	for _, m := range mutate {
		m(h)
	}
	require.NoError(t, e.db.Create(h).Error)
	return h
}

func (e *testEnv) createPosting(t *testing.T, hotelID string, mutate ...func(*models.JobPosting)) *models.JobPosting {
	t.Helper()
	start := time.Now().Add(48 * time.Hour)
	p := &models.JobPosting{
		HotelID:    hotelID,
		Title:      "Front Desk Shift",
		ShiftDate:  start.Truncate(24 * time.Hour),
		StartTime:  start,
		EndTime:    start.Add(8 * time.Hour),
		TotalHours: 8,
		HourlyPay:  18.5,
		Location:   "Downtown",
		TotalSlots: 1,
		SlotsOpen:  1,
		IsActive:   true,
	}
	for _, m := range mutate {
		m(p)
	}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func (e *testEnv) createApplication(t *testing.T, workerID, postingID string, mutate ...func(*models.Application)) *models.Application {
	t.Helper()
	a := &models.Application{
		WorkerID:  workerID,
		PostingID: postingID,
		Status:    models.ApplicationPending,
	}
	for _, m := range mutate {
		m(a)
	}
	require.NoError(t, e.db.Create(a).Error)
	return a
}

func (e *testEnv) createShift(t *testing.T, app *models.Application, posting *models.JobPosting, mutate ...func(*models.Shift)) *models.Shift {
	t.Helper()
	s := &models.Shift{
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
	for _, m := range mutate {
		m(s)
	}
	require.NoError(t, e.db.Create(s).Error)
	return s
}

func randomSuffix() string {
	return uuid.NewString()[:8]
}
