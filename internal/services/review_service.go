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

// TransitionPolicy decides whether a status move is legal. It is deliberately
// separate from the audit path: swapping in a stricter policy must not change
// how transitions are logged.
type TransitionPolicy interface {
	Allowed(from, to string) bool
}

// PermissiveTransitions allows any move between recognized statuses,
// including out of Accepted and Rejected. Admins rely on this for clerical
// corrections.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allowed(from, to string) bool { return true }

// ReviewService owns status transitions, the history ledger, and the
// status-update notification.
type ReviewService struct {
	db            *gorm.DB
	notifier      notify.Notifier
	notifyTimeout time.Duration
	transitions   TransitionPolicy
}

func NewReviewService(db *gorm.DB, notifier notify.Notifier, notifyTimeout time.Duration) *ReviewService {
	return &ReviewService{
		db:            db,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		transitions:   PermissiveTransitions{},
	}
}

// SetTransitionPolicy replaces the legality check.
func (s *ReviewService) SetTransitionPolicy(tp TransitionPolicy) {
	s.transitions = tp
}

// UpdateStatus moves an application to a new status, appends exactly one
// history entry in the same transaction, and dispatches the status-changed
// notification after the commit. Notes, assigned level, and offer type are
// overwritten with the request values, matching the review form semantics.
func (s *ReviewService) UpdateStatus(p principal.Principal, id uuid.UUID, req *dto.UpdateStatusRequest) (*models.Application, error) {
	if !policy.Permits(p.Role, policy.OpChangeApplicationStatus) {
		return nil, ErrForbidden
	}
	if !models.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}
	if req.AssignedLevel != nil && !models.ValidExperienceLevel(*req.AssignedLevel) {
		return nil, ErrInvalidLevel
	}
	if req.OfferType != nil && !models.ValidOfferType(*req.OfferType) {
		return nil, ErrInvalidOfferType
	}

	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	if !s.transitions.Allowed(app.Status, req.Status) {
		return nil, ErrTransitionNotAllowed
	}

	changedBy := p.ID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":         req.Status,
			"admin_notes":    req.AdminNotes,
			"assigned_level": req.AssignedLevel,
			"offer_type":     req.OfferType,
		}
		if err := tx.Model(&app).Updates(updates).Error; err != nil {
			return err
		}
		entry := models.ApplicationHistory{
			ID:            uuid.New(),
			ApplicationID: app.ID,
			NewStatus:     req.Status,
			ChangedBy:     &changedBy,
			Notes:         historyNote(req.Status, req.AdminNotes),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	full, err := loadApplicationDetail(s.db, app.ID)
	if err != nil {
		return nil, err
	}

	s.dispatchStatusUpdate(full, req.Status, req.AdminNotes)
	return full, nil
}

// History returns the audit trail for one application, oldest first. Admin only.
func (s *ReviewService) History(p principal.Principal, id uuid.UUID) ([]models.ApplicationHistory, error) {
	if !policy.Permits(p.Role, policy.OpViewAnyApplication) {
		return nil, ErrForbidden
	}

	var entries []models.ApplicationHistory
	if err := s.db.Where("application_id = ?", id).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load application history: %w", err)
	}
	return entries, nil
}

func (s *ReviewService) dispatchStatusUpdate(app *models.Application, status, adminNotes string) {
	msg := notify.StatusEmail{
		To:         app.User.Email,
		FirstName:  app.User.FirstName(),
		JobTitle:   app.JobPosting.Title,
		Status:     status,
		AdminNotes: adminNotes,
	}
	appID := app.ID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := s.notifier.SendStatusUpdate(ctx, msg); err != nil {
			slog.Error("status update notification failed",
				"action", "notify_status", "application_id", appID, "error", err)
		}
	}()
}

func historyNote(status, adminNotes string) string {
	if adminNotes == "" {
		adminNotes = "None"
	}
	return fmt.Sprintf("Status changed to: %s. Notes: %s", status, adminNotes)
}
