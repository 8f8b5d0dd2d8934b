package dto

import "time"

type CreateJobRequest struct {
	Title               string     `json:"title" validate:"required,max=255"`
	Description         string     `json:"description" validate:"required"`
	RequiredSkills      string     `json:"required_skills"`
	Qualifications      string     `json:"qualifications"`
	ExperienceLevel     string     `json:"experience_level" validate:"required"`
	JobType             string     `json:"job_type" validate:"required"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

type UpdateJobRequest struct {
	Title               *string    `json:"title,omitempty"`
	Description         *string    `json:"description,omitempty"`
	RequiredSkills      *string    `json:"required_skills,omitempty"`
	Qualifications      *string    `json:"qualifications,omitempty"`
	ExperienceLevel     *string    `json:"experience_level,omitempty"`
	JobType             *string    `json:"job_type,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	IsActive            *bool      `json:"is_active,omitempty"`
}

// JobFilters narrows the public posting listing. OnlyOpen keeps postings that
// are active and not past their deadline.
type JobFilters struct {
	OnlyOpen        bool
	JobType         string
	ExperienceLevel string
	Page            int
	Limit           int
}
