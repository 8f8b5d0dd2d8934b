package dto

import (
	"github.com/deboeng/careers-backend/internal/models"
	"github.com/google/uuid"
)

type SetRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UserFilters narrows the admin user listing. Search matches email, first
// name, last name, and skills.
type UserFilters struct {
	Role           string
	DeveloperLevel string
	Search         string
	Page           int
	Limit          int
}

// UserDetail is the admin view of one user: the account, its profile, the
// applications it has filed, and per-disposition counts.
type UserDetail struct {
	User                 models.User          `json:"user"`
	Applications         []models.Application `json:"applications"`
	TotalApplications    int64                `json:"total_applications"`
	AcceptedApplications int64                `json:"accepted_applications"`
	RejectedApplications int64                `json:"rejected_applications"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type JobApplicationCount struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	ApplicationCount int64     `json:"application_count"`
}

type MonthlyCount struct {
	Month            string `json:"month"`
	ApplicationCount int64  `json:"application_count"`
}

type LevelCount struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

// DashboardStats is a read-only snapshot; staleness matches the store's read
// consistency.
type DashboardStats struct {
	TotalApplicants     int64                 `json:"totalApplicants"`
	TotalJobs           int64                 `json:"totalJobs"`
	TotalApplications   int64                 `json:"totalApplications"`
	ActiveJobs          int64                 `json:"activeJobs"`
	PendingApplications int64                 `json:"pendingApplications"`
	ApplicationStatus   []StatusCount         `json:"applicationStatus"`
	RecentApplications  []models.Application  `json:"recentApplications"`
	PopularJobs         []JobApplicationCount `json:"popularJobs"`
	MonthlyTrends       []MonthlyCount        `json:"monthlyTrends"`
	LevelDistribution   []LevelCount          `json:"levelDistribution"`
}
