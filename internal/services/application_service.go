package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/models"
	"github.com/deboeng/careers-backend/internal/notify"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/deboeng/careers-backend/internal/principal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationService owns creation, uniqueness enforcement, and retrieval of
// applications.
type ApplicationService struct {
	db            *gorm.DB
	notifier      notify.Notifier
	notifyTimeout time.Duration
}

func NewApplicationService(db *gorm.DB, notifier notify.Notifier, notifyTimeout time.Duration) *ApplicationService {
	return &ApplicationService{db: db, notifier: notifier, notifyTimeout: notifyTimeout}
}

// Submit files an application for the calling principal. The posting must
// exist, be active, and not be past its deadline (still open on the deadline
// date itself). The unique (user, job) index closes the duplicate race: of two
// concurrent submissions exactly one insert succeeds and the other surfaces
// ErrAlreadyApplied. The received notification is dispatched after the commit
// and never fails the submission.
func (s *ApplicationService) Submit(p principal.Principal, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	if !policy.Permits(p.Role, policy.OpSubmitApplication) {
		return nil, ErrForbidden
	}

	var job models.JobPosting
	if err := s.db.First(&job, "id = ?", req.JobPostingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotOpen
		}
		return nil, fmt.Errorf("failed to load job posting: %w", err)
	}
	if !job.OpenOn(time.Now()) {
		return nil, ErrJobNotOpen
	}

	var existing int64
	if err := s.db.Model(&models.Application{}).
		Where("user_id = ? AND job_posting_id = ?", p.ID, req.JobPostingID).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check for existing application: %w", err)
	}
	if existing > 0 {
		return nil, ErrAlreadyApplied
	}

	app := models.Application{
		ID:           uuid.New(),
		UserID:       p.ID,
		JobPostingID: req.JobPostingID,
		CoverLetter:  req.CoverLetter,
		Status:       models.StatusSubmitted,
	}
	if err := s.db.Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	full, err := loadApplicationDetail(s.db, app.ID)
	if err != nil {
		return nil, err
	}

	s.dispatchReceived(full)
	return full, nil
}

// ListForUser returns only the calling principal's applications, newest first.
func (s *ApplicationService) ListForUser(p principal.Principal, f *dto.ApplicationFilters) ([]models.Application, *dto.Pagination, error) {
	if !policy.Permits(p.Role, policy.OpListOwnApplications) {
		return nil, nil, ErrForbidden
	}

	page, limit := normalizePage(f.Page, f.Limit)
	query := s.db.Model(&models.Application{}).Where("user_id = ?", p.ID)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count applications: %w", err)
	}

	var apps []models.Application
	if err := query.Preload("JobPosting").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&apps).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list applications: %w", err)
	}

	pg := dto.NewPagination(page, limit, total)
	return apps, &pg, nil
}

// Get returns the full detail record. Non-admin callers only see their own
// applications; a row owned by someone else is reported as missing rather
// than forbidden so callers cannot probe for existence.
func (s *ApplicationService) Get(p principal.Principal, id uuid.UUID) (*models.Application, error) {
	app, err := loadApplicationDetail(s.db, id)
	if err != nil {
		return nil, err
	}
	if app.UserID != p.ID && !policy.Permits(p.Role, policy.OpViewAnyApplication) {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

// Withdraw removes the caller's application. No history entry is produced:
// withdrawal is a removal, not a status transition.
func (s *ApplicationService) Withdraw(p principal.Principal, id uuid.UUID) error {
	if !policy.Permits(p.Role, policy.OpWithdrawApplication) {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, p.ID).Delete(&models.Application{})
		if res.Error != nil {
			return fmt.Errorf("failed to withdraw application: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrApplicationNotFound
		}
		return tx.Where("application_id = ?", id).Delete(&models.ApplicationHistory{}).Error
	})
}

// ListForJob returns all applications to one posting. Admin only.
func (s *ApplicationService) ListForJob(p principal.Principal, jobID uuid.UUID, f *dto.ApplicationFilters) ([]models.Application, *dto.Pagination, error) {
	if !policy.Permits(p.Role, policy.OpListAllApplications) {
		return nil, nil, ErrForbidden
	}

	page, limit := normalizePage(f.Page, f.Limit)
	query := s.db.Model(&models.Application{}).Where("job_posting_id = ?", jobID)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count applications: %w", err)
	}

	var apps []models.Application
	if err := query.Preload("User").Preload("User.Profile").Preload("JobPosting").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&apps).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list applications: %w", err)
	}

	pg := dto.NewPagination(page, limit, total)
	return apps, &pg, nil
}

// ListAll is the global admin listing with status, job, applicant-level, and
// inclusive creation-date-range filters.
func (s *ApplicationService) ListAll(p principal.Principal, f *dto.AdminApplicationFilters) ([]models.Application, *dto.Pagination, error) {
	if !policy.Permits(p.Role, policy.OpListAllApplications) {
		return nil, nil, ErrForbidden
	}

	page, limit := normalizePage(f.Page, f.Limit)
	query := s.db.Model(&models.Application{})
	if f.Status != "" {
		query = query.Where("applications.status = ?", f.Status)
	}
	if f.JobPostingID != nil {
		query = query.Where("applications.job_posting_id = ?", *f.JobPostingID)
	}
	if f.DeveloperLevel != "" {
		query = query.
			Joins("JOIN profiles ON profiles.user_id = applications.user_id").
			Where("profiles.developer_level = ?", f.DeveloperLevel)
	}
	if f.StartDate != nil {
		query = query.Where("applications.created_at >= ?", models.StartOfDay(*f.StartDate))
	}
	if f.EndDate != nil {
		query = query.Where("applications.created_at < ?", models.StartOfDay(*f.EndDate).AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count applications: %w", err)
	}

	var apps []models.Application
	if err := query.Preload("User").Preload("User.Profile").Preload("JobPosting").
		Order("applications.created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&apps).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list applications: %w", err)
	}

	pg := dto.NewPagination(page, limit, total)
	return apps, &pg, nil
}

func (s *ApplicationService) dispatchReceived(app *models.Application) {
	msg := notify.ReceivedEmail{
		To:          app.User.Email,
		FirstName:   app.User.FirstName(),
		JobTitle:    app.JobPosting.Title,
		ReferenceID: app.Reference(),
	}
	appID := app.ID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := s.notifier.SendApplicationReceived(ctx, msg); err != nil {
			slog.Error("application received notification failed",
				"action", "notify_received", "application_id", appID, "error", err)
		}
	}()
}

// loadApplicationDetail fetches the joined record: application plus posting
// plus applicant identity.
func loadApplicationDetail(db *gorm.DB, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := db.Preload("User").Preload("User.Profile").Preload("JobPosting").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	return &app, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
