package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitApplicationRequest struct {
	JobPostingID uuid.UUID `json:"job_posting_id" validate:"required"`
	CoverLetter  string    `json:"cover_letter" validate:"max=10000"`
}

type UpdateStatusRequest struct {
	Status        string  `json:"status" validate:"required"`
	AdminNotes    string  `json:"admin_notes" validate:"max=5000"`
	AssignedLevel *string `json:"assigned_level,omitempty"`
	OfferType     *string `json:"offer_type,omitempty"`
}

// ApplicationFilters narrows the owner-scoped and per-job listings.
type ApplicationFilters struct {
	Status string
	Page   int
	Limit  int
}

// AdminApplicationFilters narrows the global admin listing. The date range is
// inclusive on both ends, at day granularity.
type AdminApplicationFilters struct {
	Status         string
	JobPostingID   *uuid.UUID
	DeveloperLevel string
	StartDate      *time.Time
	EndDate        *time.Time
	Page           int
	Limit          int
}
