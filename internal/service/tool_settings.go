package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// ToolSettingsService handles tool settings templates and their override
// layers. Effective settings are computed at read time: template keys first,
// then global overrides, then team overrides.
type ToolSettingsService struct {
	repo      repository.ToolSettingsRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewToolSettingsService creates a new tool settings service
func NewToolSettingsService(repo repository.ToolSettingsRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *ToolSettingsService {
	return &ToolSettingsService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// UpdateSettingsRequest carries an override layer's settings document
type UpdateSettingsRequest struct {
	Settings  map[string]interface{} `json:"settings" validate:"required"`
	UpdatedBy string                 `json:"updated_by" validate:"max=100"`
}

// EffectiveSettingsResponse is the merged view for one tool and team
type EffectiveSettingsResponse struct {
	ToolName string                 `json:"tool_name"`
	Version  int                    `json:"version"`
	Settings map[string]interface{} `json:"settings"`
}

// seedFile is the on-disk shape of the tool settings seed
type seedFile struct {
	Tools []struct {
		Name        string                 `yaml:"name"`
		Description string                 `yaml:"description"`
		Settings    map[string]interface{} `yaml:"settings"`
	} `yaml:"tools"`
}

// ListTools returns all known tool settings templates
func (s *ToolSettingsService) ListTools() ([]models.ToolSettingsSchema, error) {
	schemas, err := s.repo.ListSchemas()
	if err != nil {
		return nil, fmt.Errorf("failed to list tool schemas: %w", err)
	}
	return schemas, nil
}

// GetEffective merges the template, global and team layers for a tool
func (s *ToolSettingsService) GetEffective(teamID uuid.UUID, toolName string) (*EffectiveSettingsResponse, error) {
	schema, err := s.repo.GetSchema(toolName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrToolSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get tool schema: %w", err)
	}

	merged, err := decodeSettings(schema.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to decode template settings: %w", err)
	}

	global, err := s.repo.GetGlobal(toolName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get global settings: %w", err)
	}
	if global != nil {
		layer, err := decodeSettings(global.Settings)
		if err != nil {
			return nil, fmt.Errorf("failed to decode global settings: %w", err)
		}
		mergeSettings(merged, layer)
	}

	team, err := s.repo.GetTeam(teamID, toolName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get team settings: %w", err)
	}
	if team != nil {
		layer, err := decodeSettings(team.Settings)
		if err != nil {
			return nil, fmt.Errorf("failed to decode team settings: %w", err)
		}
		mergeSettings(merged, layer)
	}

	return &EffectiveSettingsResponse{
		ToolName: toolName,
		Version:  schema.Version,
		Settings: merged,
	}, nil
}

// UpdateGlobal replaces the global override layer for a tool
func (s *ToolSettingsService) UpdateGlobal(toolName string, req *UpdateSettingsRequest) (*models.GlobalToolSettings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.requireSchema(toolName); err != nil {
		return nil, err
	}

	data, err := json.Marshal(req.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}

	settings := &models.GlobalToolSettings{
		ToolName:  toolName,
		Settings:  data,
		UpdatedBy: req.UpdatedBy,
	}
	if err := s.repo.UpsertGlobal(settings); err != nil {
		return nil, fmt.Errorf("failed to save global settings: %w", err)
	}
	return settings, nil
}

// UpdateTeam replaces one team's override layer for a tool
func (s *ToolSettingsService) UpdateTeam(teamID uuid.UUID, toolName string, req *UpdateSettingsRequest) (*models.TeamToolSettings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.requireSchema(toolName); err != nil {
		return nil, err
	}

	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	data, err := json.Marshal(req.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}

	settings := &models.TeamToolSettings{
		TeamID:    teamID,
		ToolName:  toolName,
		Settings:  data,
		UpdatedBy: req.UpdatedBy,
	}
	if err := s.repo.UpsertTeam(settings); err != nil {
		return nil, fmt.Errorf("failed to save team settings: %w", err)
	}
	return settings, nil
}

// SeedFromFile loads tool templates from a YAML file when the schema table
// is empty. Called once at startup.
func (s *ToolSettingsService) SeedFromFile(path string) (int, error) {
	count, err := s.repo.CountSchemas()
	if err != nil {
		return 0, fmt.Errorf("failed to count tool schemas: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	seeded := 0
	for _, tool := range seed.Tools {
		if tool.Name == "" {
			continue
		}
		data, err := json.Marshal(tool.Settings)
		if err != nil {
			return seeded, fmt.Errorf("failed to encode settings for %q: %w", tool.Name, err)
		}
		schema := &models.ToolSettingsSchema{
			ToolName:    tool.Name,
			Description: tool.Description,
			Settings:    data,
			Version:     1,
		}
		if err := s.repo.UpsertSchema(schema); err != nil {
			return seeded, fmt.Errorf("failed to seed schema for %q: %w", tool.Name, err)
		}
		seeded++
	}
	return seeded, nil
}

func (s *ToolSettingsService) requireSchema(toolName string) error {
	if _, err := s.repo.GetSchema(toolName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrToolSettingsNotFound
		}
		return fmt.Errorf("failed to get tool schema: %w", err)
	}
	return nil
}

func decodeSettings(raw json.RawMessage) (map[string]interface{}, error) {
	settings := map[string]interface{}{}
	if len(raw) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// mergeSettings overlays layer onto base, top-level keys only
func mergeSettings(base, layer map[string]interface{}) {
	for key, value := range layer {
		base[key] = value
	}
}
