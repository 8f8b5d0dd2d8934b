package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Review statuses. Submitted is the initial value; the others are set by
// admins through the review workflow.
const (
	StatusSubmitted   = "Submitted"
	StatusUnderReview = "Under Review"
	StatusShortlisted = "Shortlisted"
	StatusAccepted    = "Accepted"
	StatusRejected    = "Rejected"
)

var ApplicationStatuses = []string{
	StatusSubmitted, StatusUnderReview, StatusShortlisted, StatusAccepted, StatusRejected,
}

func ValidStatus(status string) bool {
	for _, s := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

const (
	OfferUnpaidInternship = "Unpaid Internship"
	OfferPaidInternship   = "Paid Internship"
	OfferFullTime         = "Full-time Employment"
)

var OfferTypes = []string{OfferUnpaidInternship, OfferPaidInternship, OfferFullTime}

func ValidOfferType(offerType string) bool {
	for _, o := range OfferTypes {
		if o == offerType {
			return true
		}
	}
	return false
}

// Application links one user to one job posting. The composite unique index is
// what actually enforces the one-application-per-posting invariant: two
// concurrent submissions race past any prior read, but only one insert wins.
type Application struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	JobPostingID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"job_posting_id"`
	CoverLetter   string    `gorm:"type:text" json:"cover_letter"`
	Status        string    `gorm:"size:20;not null;default:'Submitted'" json:"status"`
	AdminNotes    string    `gorm:"type:text" json:"admin_notes"`
	AssignedLevel *string   `gorm:"size:30" json:"assigned_level,omitempty"`
	OfferType     *string   `gorm:"size:30" json:"offer_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"applicant,omitempty"`
	JobPosting JobPosting `gorm:"foreignKey:JobPostingID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
}

// Reference is the human-facing id quoted in notification mails.
func (a *Application) Reference() string {
	return "APP-" + strings.ToUpper(a.ID.String()[:8])
}
