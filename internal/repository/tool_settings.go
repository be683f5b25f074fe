package repository

import (
	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToolSettingsRepository handles database operations for tool settings
// templates and their global and per-team override layers
type ToolSettingsRepository struct {
	db *gorm.DB
}

// NewToolSettingsRepository creates a new tool settings repository
func NewToolSettingsRepository(db *gorm.DB) *ToolSettingsRepository {
	return &ToolSettingsRepository{db: db}
}

// GetSchema retrieves the settings template for a tool
func (r *ToolSettingsRepository) GetSchema(toolName string) (*models.ToolSettingsSchema, error) {
	var schema models.ToolSettingsSchema
	err := r.db.First(&schema, "tool_name = ?", toolName).Error
	if err != nil {
		return nil, err
	}
	return &schema, nil
}

// ListSchemas retrieves all tool settings templates
func (r *ToolSettingsRepository) ListSchemas() ([]models.ToolSettingsSchema, error) {
	var schemas []models.ToolSettingsSchema
	err := r.db.Order("tool_name").Find(&schemas).Error
	return schemas, err
}

// CountSchemas returns the number of templates; used to decide whether to seed
func (r *ToolSettingsRepository) CountSchemas() (int64, error) {
	var count int64
	err := r.db.Model(&models.ToolSettingsSchema{}).Count(&count).Error
	return count, err
}

// UpsertSchema inserts or replaces the template for a tool
func (r *ToolSettingsRepository) UpsertSchema(schema *models.ToolSettingsSchema) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tool_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "settings", "version", "updated_at"}),
	}).Create(schema).Error
}

// GetGlobal retrieves the global override row for a tool
func (r *ToolSettingsRepository) GetGlobal(toolName string) (*models.GlobalToolSettings, error) {
	var settings models.GlobalToolSettings
	err := r.db.First(&settings, "tool_name = ?", toolName).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpsertGlobal inserts or replaces the global override row for a tool
func (r *ToolSettingsRepository) UpsertGlobal(settings *models.GlobalToolSettings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tool_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_by", "updated_at"}),
	}).Create(settings).Error
}

// GetTeam retrieves a team's override row for a tool
func (r *ToolSettingsRepository) GetTeam(teamID uuid.UUID, toolName string) (*models.TeamToolSettings, error) {
	var settings models.TeamToolSettings
	err := r.db.First(&settings, "team_id = ? AND tool_name = ?", teamID, toolName).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpsertTeam inserts or replaces a team's override row for a tool
func (r *ToolSettingsRepository) UpsertTeam(settings *models.TeamToolSettings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "tool_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_by", "updated_at"}),
	}).Create(settings).Error
}
