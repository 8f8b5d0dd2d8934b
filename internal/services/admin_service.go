package services

import (
	"errors"
	"fmt"

	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/models"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/deboeng/careers-backend/internal/principal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminService owns user administration: listing, detail, role changes, and
// account removal.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// DeleteUser removes a user with their profile, applications, and history
// rows in one transaction; either everything goes or nothing does. Callers
// cannot delete themselves, and super_admin accounts cannot be deleted at all.
func (s *AdminService) DeleteUser(p principal.Principal, targetID uuid.UUID) error {
	if !policy.Permits(p.Role, policy.OpDeleteUser) {
		return ErrForbidden
	}
	if targetID == p.ID {
		return ErrSelfDelete
	}

	var target models.User
	if err := s.db.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}
	if target.Role == string(policy.RoleSuperAdmin) {
		return ErrSuperAdminDelete
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		appIDs := tx.Model(&models.Application{}).Select("id").Where("user_id = ?", targetID)
		if err := tx.Where("application_id IN (?)", appIDs).Delete(&models.ApplicationHistory{}).Error; err != nil {
			return fmt.Errorf("failed to delete application history: %w", err)
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.Application{}).Error; err != nil {
			return fmt.Errorf("failed to delete applications: %w", err)
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.Profile{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		if err := tx.Delete(&target).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

// SetUserRole changes a user's role to one of the recognized values.
func (s *AdminService) SetUserRole(p principal.Principal, targetID uuid.UUID, newRole string) error {
	if !policy.Permits(p.Role, policy.OpChangeUserRole) {
		return ErrForbidden
	}
	if !policy.ValidRole(newRole) {
		return ErrInvalidRole
	}

	res := s.db.Model(&models.User{}).Where("id = ?", targetID).Update("role", newRole)
	if res.Error != nil {
		return fmt.Errorf("failed to update user role: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListUsers returns users with profiles, filtered by role, developer level,
// and a free-text search over email, name, and skills.
func (s *AdminService) ListUsers(p principal.Principal, f *dto.UserFilters) ([]models.User, *dto.Pagination, error) {
	if !policy.Permits(p.Role, policy.OpListUsers) {
		return nil, nil, ErrForbidden
	}

	page, limit := normalizePage(f.Page, f.Limit)
	query := s.db.Model(&models.User{}).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id")
	if f.Role != "" {
		query = query.Where("users.role = ?", f.Role)
	}
	if f.DeveloperLevel != "" {
		query = query.Where("profiles.developer_level = ?", f.DeveloperLevel)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		query = query.Where(
			"users.email LIKE ? OR profiles.first_name LIKE ? OR profiles.last_name LIKE ? OR profiles.skills LIKE ?",
			term, term, term, term,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	if err := query.Preload("Profile").
		Order("users.created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}

	pg := dto.NewPagination(page, limit, total)
	return users, &pg, nil
}

// GetUser returns one user with profile, their applications, and
// per-disposition counts.
func (s *AdminService) GetUser(p principal.Principal, targetID uuid.UUID) (*dto.UserDetail, error) {
	if !policy.Permits(p.Role, policy.OpViewUserDetail) {
		return nil, ErrForbidden
	}

	var user models.User
	if err := s.db.Preload("Profile").First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	detail := &dto.UserDetail{User: user}

	if err := s.db.Preload("JobPosting").
		Where("user_id = ?", targetID).
		Order("created_at DESC").
		Find(&detail.Applications).Error; err != nil {
		return nil, fmt.Errorf("failed to load user applications: %w", err)
	}

	counts := map[string]*int64{
		"":                    &detail.TotalApplications,
		models.StatusAccepted: &detail.AcceptedApplications,
		models.StatusRejected: &detail.RejectedApplications,
	}
	for status, dst := range counts {
		q := s.db.Model(&models.Application{}).Where("user_id = ?", targetID)
		if status != "" {
			q = q.Where("status = ?", status)
		}
		if err := q.Count(dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count user applications: %w", err)
		}
	}

	return detail, nil
}
