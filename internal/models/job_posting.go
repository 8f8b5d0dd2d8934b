package models

import (
	"time"

	"github.com/google/uuid"
)

// Experience levels, ordered from least to most senior. The same scale applies
// to job postings, applicant profiles, and the level assigned on an offer.
const (
	LevelBeginner      = "Beginner"
	LevelEarlyBeginner = "Early Beginner"
	LevelJunior        = "Junior Developer"
	LevelMidLevel      = "Mid-Level Developer"
	LevelSenior        = "Senior Developer"
	LevelTechLead      = "Tech Lead"
	LevelExpert        = "Expert Developer"
	LevelMaster        = "Master Developer"
)

var ExperienceLevels = []string{
	LevelBeginner, LevelEarlyBeginner, LevelJunior, LevelMidLevel,
	LevelSenior, LevelTechLead, LevelExpert, LevelMaster,
}

func ValidExperienceLevel(level string) bool {
	for _, l := range ExperienceLevels {
		if l == level {
			return true
		}
	}
	return false
}

const (
	JobTypeInternship = "Internship"
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
)

var JobTypes = []string{JobTypeInternship, JobTypeFullTime, JobTypePartTime}

func ValidJobType(jobType string) bool {
	for _, t := range JobTypes {
		if t == jobType {
			return true
		}
	}
	return false
}

// JobPosting is an open position applicants can apply to. CreatedBy is nulled
// when the creating admin account is removed; applications cascade with the posting.
type JobPosting struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title               string     `gorm:"size:255;not null" json:"title"`
	Description         string     `gorm:"type:text;not null" json:"description"`
	RequiredSkills      string     `gorm:"type:text" json:"required_skills"`
	Qualifications      string     `gorm:"type:text" json:"qualifications"`
	ExperienceLevel     string     `gorm:"size:30;not null" json:"experience_level"`
	JobType             string     `gorm:"size:20;not null" json:"job_type"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	CreatedBy           *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	Creator *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
}

// OpenOn reports whether the posting accepts applications on the given day.
// The deadline is compared at date granularity: a posting is still open on the
// deadline date itself.
func (j *JobPosting) OpenOn(day time.Time) bool {
	if !j.IsActive {
		return false
	}
	if j.ApplicationDeadline == nil {
		return true
	}
	return !StartOfDay(*j.ApplicationDeadline).Before(StartOfDay(day))
}

// StartOfDay truncates a timestamp to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
