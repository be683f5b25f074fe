package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TurnoverSnapshot is an immutable daily copy of a scope's turnover data.
// Rows are append-only; a duplicate (scope, date) insert is a conflict.
// The unique index is created with NULLS NOT DISTINCT in database.Initialize.
type TurnoverSnapshot struct {
	BaseModel
	TeamID           uuid.UUID       `json:"team_id" gorm:"type:uuid;not null" validate:"required"`
	ApplicationID    *uuid.UUID      `json:"application_id" gorm:"type:uuid"`
	SubApplicationID *uuid.UUID      `json:"sub_application_id" gorm:"type:uuid"`
	SnapshotDate     time.Time       `json:"snapshot_date" gorm:"type:date;not null;index"`
	TurnoverData     json.RawMessage `json:"turnover_data" gorm:"type:jsonb"`
	EntryCount       int             `json:"entry_count" gorm:"not null;default:0"`
}

// TableName returns the table name for TurnoverSnapshot
func (TurnoverSnapshot) TableName() string {
	return "turnover_snapshots"
}
