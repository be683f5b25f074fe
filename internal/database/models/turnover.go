package models

import (
	"time"

	"github.com/google/uuid"
)

// Turnover represents a shift-handover record between an outgoing and
// incoming person for a team/application scope.
type Turnover struct {
	BaseModel
	TeamID           uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	ApplicationID    *uuid.UUID     `json:"application_id" gorm:"type:uuid;index"`
	SubApplicationID *uuid.UUID     `json:"sub_application_id" gorm:"type:uuid;index"`
	HandoverFrom     string         `json:"handover_from" gorm:"size:100" validate:"max=100"`
	HandoverTo       string         `json:"handover_to" gorm:"size:100" validate:"max=100"`
	Status           TurnoverStatus `json:"status" gorm:"not null;size:20;default:'active';index"`
	TurnoverDate     time.Time      `json:"turnover_date" gorm:"not null;index"`
	Summary          string         `json:"summary" gorm:"size:2000" validate:"max=2000"`

	// Relationships
	Entries []TurnoverEntry `json:"entries,omitempty" gorm:"foreignKey:TurnoverID"`
}

// TableName returns the table name for Turnover
func (Turnover) TableName() string {
	return "turnovers"
}

// TurnoverEntry represents one item handed over in a turnover.
// Priority is the flagging state; any priority may be set from any other.
type TurnoverEntry struct {
	BaseModel
	TurnoverID  uuid.UUID     `json:"turnover_id" gorm:"type:uuid;not null;index" validate:"required"`
	EntryType   EntryType     `json:"entry_type" gorm:"not null;size:20;index" validate:"required"`
	Priority    EntryPriority `json:"priority" gorm:"not null;size:20;default:'normal';index"`
	Title       string        `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string        `json:"description" gorm:"size:2000" validate:"max=2000"`
	ReferenceID string        `json:"reference_id" gorm:"size:50" validate:"max=50"` // ticket / change / incident number
	EntryStatus string        `json:"entry_status" gorm:"size:50" validate:"max=50"`
	Comments    string        `json:"comments" gorm:"size:1000" validate:"max=1000"`
	FlaggedBy   string        `json:"flagged_by" gorm:"size:100"`
	FlaggedAt   *time.Time    `json:"flagged_at"`
}

// TableName returns the table name for TurnoverEntry
func (TurnoverEntry) TableName() string {
	return "turnover_entries"
}
