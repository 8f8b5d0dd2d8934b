package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the careers portal. Role gates every admin operation;
// the capability mapping lives in internal/policy.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:'applicant'" json:"role"`
	IsVerified   bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// FirstName returns the profile first name, or "" when no profile exists yet.
func (u *User) FirstName() string {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.FirstName
}
