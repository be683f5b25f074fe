package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TurnoverDraft is the scratch row for an in-progress turnover. At most one
// draft exists per (team, application, sub-application) triple; the unique
// index backing this is created with NULLS NOT DISTINCT in database.Initialize
// because the scope columns are nullable.
type TurnoverDraft struct {
	BaseModel
	TeamID           uuid.UUID       `json:"team_id" gorm:"type:uuid;not null" validate:"required"`
	ApplicationID    *uuid.UUID      `json:"application_id" gorm:"type:uuid"`
	SubApplicationID *uuid.UUID      `json:"sub_application_id" gorm:"type:uuid"`
	Status           TurnoverStatus  `json:"status" gorm:"not null;size:20;default:'draft'"`
	HandoverFrom     string          `json:"handover_from" gorm:"size:100"`
	HandoverTo       string          `json:"handover_to" gorm:"size:100"`
	Entries          json.RawMessage `json:"entries" gorm:"type:jsonb"`
}

// TableName returns the table name for TurnoverDraft
func (TurnoverDraft) TableName() string {
	return "turnover_drafts"
}

// DraftEntry is the boundary-validated shape of one element of
// TurnoverDraft.Entries. The jsonb column itself is opaque to the schema.
type DraftEntry struct {
	EntryType   EntryType     `json:"entry_type" validate:"required"`
	Priority    EntryPriority `json:"priority,omitempty"`
	Title       string        `json:"title" validate:"required,max=200"`
	Description string        `json:"description,omitempty" validate:"max=2000"`
	ReferenceID string        `json:"reference_id,omitempty" validate:"max=50"`
	EntryStatus string        `json:"entry_status,omitempty" validate:"max=50"`
	Comments    string        `json:"comments,omitempty" validate:"max=1000"`
}
