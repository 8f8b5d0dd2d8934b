package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the biographical and skill attributes of an applicant.
// The lifecycle core reads these (admin listings, dashboard) but never writes them.
type Profile struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FirstName         string    `gorm:"size:100" json:"first_name"`
	LastName          string    `gorm:"size:100" json:"last_name"`
	PhoneNumber       string    `gorm:"size:30" json:"phone_number"`
	DeveloperLevel    string    `gorm:"size:30" json:"developer_level"`
	Education         string    `gorm:"type:text" json:"education"`
	Skills            string    `gorm:"type:text" json:"skills"`
	Experience        string    `gorm:"type:text" json:"experience"`
	YearsOfExperience int       `json:"years_of_experience"`
	ResumeFilePath    string    `gorm:"size:500" json:"resume_file_path"`
	LinkedinURL       string    `gorm:"size:255" json:"linkedin_url"`
	GithubURL         string    `gorm:"size:255" json:"github_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
