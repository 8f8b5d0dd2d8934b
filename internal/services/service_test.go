package services

import (
	"context"
	"testing"
	"time"

	"github.com/deboeng/careers-backend/internal/models"
	"github.com/deboeng/careers-backend/internal/notify"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/deboeng/careers-backend/internal/principal"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testNotifyTimeout = 2 * time.Second

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.JobPosting{},
		&models.Application{},
		&models.ApplicationHistory{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role policy.Role) models.User {
	t.Helper()
	user := models.User{
		ID:           uuid.New(),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         string(role),
		IsVerified:   true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProfile(t *testing.T, db *gorm.DB, userID uuid.UUID, firstName, level string) models.Profile {
	t.Helper()
	profile := models.Profile{
		ID:             uuid.New(),
		UserID:         userID,
		FirstName:      firstName,
		LastName:       "Tester",
		DeveloperLevel: level,
	}
	require.NoError(t, db.Create(&profile).Error)
	return profile
}

func seedJob(t *testing.T, db *gorm.DB, mutate ...func(*models.JobPosting)) models.JobPosting {
	t.Helper()
	job := models.JobPosting{
		ID:              uuid.New(),
		Title:           "Backend Engineer",
		Description:     "Build and run the careers platform.",
		ExperienceLevel: models.LevelMidLevel,
		JobType:         models.JobTypeFullTime,
		IsActive:        true,
	}
	for _, m := range mutate {
		m(&job)
	}
	require.NoError(t, db.Create(&job).Error)
	return job
}

func seedApplication(t *testing.T, db *gorm.DB, userID, jobID uuid.UUID, status string) models.Application {
	t.Helper()
	app := models.Application{
		ID:           uuid.New(),
		UserID:       userID,
		JobPostingID: jobID,
		Status:       status,
	}
	require.NoError(t, db.Create(&app).Error)
	return app
}

func asPrincipal(u models.User) principal.Principal {
	return principal.Principal{ID: u.ID, Role: policy.Role(u.Role)}
}

// recordingNotifier captures dispatched notifications so tests can observe
// the async send. A non-nil err makes every send fail after recording.
type recordingNotifier struct {
	receivedCh chan notify.ReceivedEmail
	statusCh   chan notify.StatusEmail
	err        error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		receivedCh: make(chan notify.ReceivedEmail, 8),
		statusCh:   make(chan notify.StatusEmail, 8),
	}
}

func (n *recordingNotifier) SendApplicationReceived(_ context.Context, msg notify.ReceivedEmail) error {
	n.receivedCh <- msg
	return n.err
}

func (n *recordingNotifier) SendStatusUpdate(_ context.Context, msg notify.StatusEmail) error {
	n.statusCh <- msg
	return n.err
}

func (n *recordingNotifier) waitReceived(t *testing.T) notify.ReceivedEmail {
	t.Helper()
	select {
	case msg := <-n.receivedCh:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for application-received notification")
		return notify.ReceivedEmail{}
	}
}

func (n *recordingNotifier) waitStatus(t *testing.T) notify.StatusEmail {
	t.Helper()
	select {
	case msg := <-n.statusCh:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for status-update notification")
		return notify.StatusEmail{}
	}
}
