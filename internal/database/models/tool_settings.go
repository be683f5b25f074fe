package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ToolSettingsSchema is the settings template for one tool. Effective
// settings are computed at read time as template merged with the global
// row and then the team row, later layers winning per key.
type ToolSettingsSchema struct {
	BaseModel
	ToolName    string          `json:"tool_name" gorm:"not null;size:100;uniqueIndex" validate:"required,max=100"`
	Description string          `json:"description" gorm:"size:500" validate:"max=500"`
	Settings    json.RawMessage `json:"settings" gorm:"type:jsonb"`
	Version     int             `json:"version" gorm:"not null;default:1"`
}

// TableName returns the table name for ToolSettingsSchema
func (ToolSettingsSchema) TableName() string {
	return "tool_settings_schemas"
}

// GlobalToolSettings holds the portal-wide override layer for one tool
type GlobalToolSettings struct {
	BaseModel
	ToolName  string          `json:"tool_name" gorm:"not null;size:100;uniqueIndex" validate:"required,max=100"`
	Settings  json.RawMessage `json:"settings" gorm:"type:jsonb"`
	UpdatedBy string          `json:"updated_by" gorm:"size:100"`
}

// TableName returns the table name for GlobalToolSettings
func (GlobalToolSettings) TableName() string {
	return "global_tool_settings"
}

// TeamToolSettings holds one team's override layer for one tool
type TeamToolSettings struct {
	BaseModel
	TeamID    uuid.UUID       `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_tool_settings_team_tool" validate:"required"`
	ToolName  string          `json:"tool_name" gorm:"not null;size:100;uniqueIndex:idx_team_tool_settings_team_tool" validate:"required,max=100"`
	Settings  json.RawMessage `json:"settings" gorm:"type:jsonb"`
	UpdatedBy string          `json:"updated_by" gorm:"size:100"`
}

// TableName returns the table name for TeamToolSettings
func (TeamToolSettings) TableName() string {
	return "team_tool_settings"
}
