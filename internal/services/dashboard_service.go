package services

import (
	"fmt"
	"time"

	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/models"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/deboeng/careers-backend/internal/principal"
	"gorm.io/gorm"
)

// DashboardService computes derived statistics from the application, job, and
// user data. Read-only: it never writes to the store.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats returns the operations dashboard snapshot. No locking: staleness
// equal to the store's read consistency is acceptable.
func (s *DashboardService) Stats(p principal.Principal) (*dto.DashboardStats, error) {
	if !policy.Permits(p.Role, policy.OpViewDashboard) {
		return nil, ErrForbidden
	}

	st := &dto.DashboardStats{}

	if err := s.db.Model(&models.User{}).
		Where("role = ?", string(policy.RoleApplicant)).
		Count(&st.TotalApplicants).Error; err != nil {
		return nil, fmt.Errorf("failed to count applicants: %w", err)
	}
	if err := s.db.Model(&models.JobPosting{}).Count(&st.TotalJobs).Error; err != nil {
		return nil, fmt.Errorf("failed to count job postings: %w", err)
	}
	if err := s.db.Model(&models.Application{}).Count(&st.TotalApplications).Error; err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	today := models.StartOfDay(time.Now())
	if err := s.db.Model(&models.JobPosting{}).
		Where("is_active = ?", true).
		Where("application_deadline IS NULL OR application_deadline >= ?", today).
		Count(&st.ActiveJobs).Error; err != nil {
		return nil, fmt.Errorf("failed to count active jobs: %w", err)
	}

	if err := s.db.Model(&models.Application{}).
		Where("status IN ?", []string{models.StatusSubmitted, models.StatusUnderReview}).
		Count(&st.PendingApplications).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending applications: %w", err)
	}

	if err := s.db.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&st.ApplicationStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to build status histogram: %w", err)
	}

	if err := s.db.Preload("User").Preload("User.Profile").Preload("JobPosting").
		Order("created_at DESC").
		Limit(10).
		Find(&st.RecentApplications).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent applications: %w", err)
	}

	if err := s.db.Model(&models.JobPosting{}).
		Select("job_postings.id, job_postings.title, COUNT(applications.id) AS application_count").
		Joins("LEFT JOIN applications ON applications.job_posting_id = job_postings.id").
		Where("job_postings.is_active = ?", true).
		Group("job_postings.id, job_postings.title").
		Order("application_count DESC").
		Limit(5).
		Scan(&st.PopularJobs).Error; err != nil {
		return nil, fmt.Errorf("failed to load popular jobs: %w", err)
	}

	trends, err := s.monthlyTrends(time.Now())
	if err != nil {
		return nil, err
	}
	st.MonthlyTrends = trends

	if err := s.db.Model(&models.Profile{}).
		Select("COALESCE(NULLIF(profiles.developer_level, ''), 'Not Specified') AS level, COUNT(*) AS count").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("users.role = ?", string(policy.RoleApplicant)).
		Group("level").
		Order("count DESC").
		Scan(&st.LevelDistribution).Error; err != nil {
		return nil, fmt.Errorf("failed to build level distribution: %w", err)
	}

	return st, nil
}

// monthlyTrends buckets application creation times into the trailing six
// calendar months. Bucketing happens in Go so the query stays portable across
// store dialects.
func (s *DashboardService) monthlyTrends(now time.Time) ([]dto.MonthlyCount, error) {
	start := monthStart(now).AddDate(0, -5, 0)

	var createdAts []time.Time
	if err := s.db.Model(&models.Application{}).
		Where("created_at >= ?", start).
		Pluck("created_at", &createdAts).Error; err != nil {
		return nil, fmt.Errorf("failed to load application trend data: %w", err)
	}

	counts := make(map[string]int64, 6)
	for _, t := range createdAts {
		counts[t.UTC().Format("2006-01")]++
	}

	trends := make([]dto.MonthlyCount, 0, 6)
	for i := 0; i < 6; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		trends = append(trends, dto.MonthlyCount{Month: month, ApplicationCount: counts[month]})
	}
	return trends, nil
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
