package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationHistory is the append-only audit ledger. Exactly one row is
// written per successful status transition; rows are never updated. ChangedBy
// is nulled if the acting admin account is later removed.
type ApplicationHistory struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"application_id"`
	NewStatus     string     `gorm:"size:20;not null" json:"new_status"`
	ChangedBy     *uuid.UUID `gorm:"type:uuid" json:"changed_by,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`

	Application Application `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"-"`
}
