package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/models"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/deboeng/careers-backend/internal/principal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobService owns the posting lifecycle: admins create and edit postings, the
// public listing feeds the job board.
type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) Create(p principal.Principal, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	if !policy.Permits(p.Role, policy.OpManageJobPostings) {
		return nil, ErrForbidden
	}
	if !models.ValidExperienceLevel(req.ExperienceLevel) {
		return nil, ErrInvalidLevel
	}
	if !models.ValidJobType(req.JobType) {
		return nil, ErrInvalidJobType
	}

	createdBy := p.ID
	job := models.JobPosting{
		ID:                  uuid.New(),
		Title:               req.Title,
		Description:         req.Description,
		RequiredSkills:      req.RequiredSkills,
		Qualifications:      req.Qualifications,
		ExperienceLevel:     req.ExperienceLevel,
		JobType:             req.JobType,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            true,
		CreatedBy:           &createdBy,
	}
	if err := s.db.Create(&job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}
	return &job, nil
}

// List is the public job board listing, newest first.
func (s *JobService) List(f *dto.JobFilters) ([]models.JobPosting, *dto.Pagination, error) {
	page, limit := normalizePage(f.Page, f.Limit)
	query := s.db.Model(&models.JobPosting{})
	if f.OnlyOpen {
		today := models.StartOfDay(time.Now())
		query = query.Where("is_active = ?", true).
			Where("application_deadline IS NULL OR application_deadline >= ?", today)
	}
	if f.JobType != "" {
		query = query.Where("job_type = ?", f.JobType)
	}
	if f.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", f.ExperienceLevel)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count job postings: %w", err)
	}

	var jobs []models.JobPosting
	if err := query.Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&jobs).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list job postings: %w", err)
	}

	pg := dto.NewPagination(page, limit, total)
	return jobs, &pg, nil
}

func (s *JobService) Get(id uuid.UUID) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job posting: %w", err)
	}
	return &job, nil
}

// Update applies the non-nil request fields, including deactivation.
func (s *JobService) Update(p principal.Principal, id uuid.UUID, req *dto.UpdateJobRequest) (*models.JobPosting, error) {
	if !policy.Permits(p.Role, policy.OpManageJobPostings) {
		return nil, ErrForbidden
	}
	if req.ExperienceLevel != nil && !models.ValidExperienceLevel(*req.ExperienceLevel) {
		return nil, ErrInvalidLevel
	}
	if req.JobType != nil && !models.ValidJobType(*req.JobType) {
		return nil, ErrInvalidJobType
	}

	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.RequiredSkills != nil {
		updates["required_skills"] = *req.RequiredSkills
	}
	if req.Qualifications != nil {
		updates["qualifications"] = *req.Qualifications
	}
	if req.ExperienceLevel != nil {
		updates["experience_level"] = *req.ExperienceLevel
	}
	if req.JobType != nil {
		updates["job_type"] = *req.JobType
	}
	if req.ApplicationDeadline != nil {
		updates["application_deadline"] = *req.ApplicationDeadline
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return job, nil
	}

	if err := s.db.Model(job).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update job posting: %w", err)
	}
	return job, nil
}
