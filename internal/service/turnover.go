package service

import (
	"errors"
	"fmt"
	"time"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TurnoverService handles business logic for turnovers and their entries
type TurnoverService struct {
	repo      repository.TurnoverRepositoryInterface
	entryRepo repository.TurnoverEntryRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTurnoverService creates a new turnover service
func NewTurnoverService(repo repository.TurnoverRepositoryInterface, entryRepo repository.TurnoverEntryRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *TurnoverService {
	return &TurnoverService{
		repo:      repo,
		entryRepo: entryRepo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateTurnoverRequest represents the request to create a turnover
type CreateTurnoverRequest struct {
	TeamID           uuid.UUID            `json:"team_id" validate:"required"`
	ApplicationID    *uuid.UUID           `json:"application_id,omitempty"`
	SubApplicationID *uuid.UUID           `json:"sub_application_id,omitempty"`
	HandoverFrom     string               `json:"handover_from" validate:"max=100"`
	HandoverTo       string               `json:"handover_to" validate:"max=100"`
	TurnoverDate     *time.Time           `json:"turnover_date,omitempty"`
	Summary          string               `json:"summary" validate:"max=2000"`
	Entries          []CreateEntryRequest `json:"entries" validate:"dive"`
}

// CreateEntryRequest represents one entry within a turnover
type CreateEntryRequest struct {
	EntryType   models.EntryType     `json:"entry_type" validate:"required"`
	Priority    models.EntryPriority `json:"priority"`
	Title       string               `json:"title" validate:"required,max=200"`
	Description string               `json:"description" validate:"max=2000"`
	ReferenceID string               `json:"reference_id" validate:"max=50"`
	EntryStatus string               `json:"entry_status" validate:"max=50"`
	Comments    string               `json:"comments" validate:"max=1000"`
}

// UpdateEntryRequest represents the request to update a turnover entry
type UpdateEntryRequest struct {
	EntryType   models.EntryType `json:"entry_type" validate:"required"`
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description" validate:"max=2000"`
	ReferenceID string           `json:"reference_id" validate:"max=50"`
	EntryStatus string           `json:"entry_status" validate:"max=50"`
	Comments    string           `json:"comments" validate:"max=1000"`
}

// Create validates and creates a turnover with its entries
func (s *TurnoverService) Create(req *CreateTurnoverRequest) (*models.Turnover, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.SubApplicationID != nil && req.ApplicationID == nil {
		return nil, apperrors.NewValidationError("application_id", "sub_application_id requires application_id")
	}
	for i, entry := range req.Entries {
		if !entry.EntryType.IsValid() {
			return nil, fmt.Errorf("%w: entry %d has type %q", apperrors.ErrInvalidEntryType, i, entry.EntryType)
		}
		if entry.Priority != "" && !entry.Priority.IsValid() {
			return nil, fmt.Errorf("%w: entry %d has priority %q", apperrors.ErrInvalidPriority, i, entry.Priority)
		}
	}

	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if !team.IsActive {
		return nil, apperrors.ErrTeamInactive
	}

	date := time.Now()
	if req.TurnoverDate != nil {
		date = *req.TurnoverDate
	}

	turnover := &models.Turnover{
		TeamID:           req.TeamID,
		ApplicationID:    req.ApplicationID,
		SubApplicationID: req.SubApplicationID,
		HandoverFrom:     req.HandoverFrom,
		HandoverTo:       req.HandoverTo,
		Status:           models.TurnoverStatusActive,
		TurnoverDate:     date,
		Summary:          req.Summary,
	}
	for _, entry := range req.Entries {
		priority := entry.Priority
		if priority == "" {
			priority = models.EntryPriorityNormal
		}
		turnover.Entries = append(turnover.Entries, models.TurnoverEntry{
			EntryType:   entry.EntryType,
			Priority:    priority,
			Title:       entry.Title,
			Description: entry.Description,
			ReferenceID: entry.ReferenceID,
			EntryStatus: entry.EntryStatus,
			Comments:    entry.Comments,
		})
	}

	if err := s.repo.Create(turnover); err != nil {
		return nil, fmt.Errorf("failed to create turnover: %w", err)
	}
	return turnover, nil
}

// GetByID retrieves a turnover with its entries
func (s *TurnoverService) GetByID(id uuid.UUID) (*models.Turnover, error) {
	turnover, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTurnoverNotFound
		}
		return nil, fmt.Errorf("failed to get turnover: %w", err)
	}
	return turnover, nil
}

// List retrieves turnovers for a team scope with pagination
func (s *TurnoverService) List(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, status *models.TurnoverStatus, page, pageSize int) ([]models.Turnover, int64, error) {
	if status != nil && !status.IsValid() {
		return nil, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, *status)
	}

	page, pageSize = normalizePage(page, pageSize)
	turnovers, total, err := s.repo.List(teamID, applicationID, subApplicationID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list turnovers: %w", err)
	}
	return turnovers, total, nil
}

// Complete marks a turnover completed and removes the scope's working draft
// in the same transaction.
func (s *TurnoverService) Complete(id uuid.UUID) (*models.Turnover, error) {
	turnover, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTurnoverNotFound
		}
		return nil, fmt.Errorf("failed to get turnover: %w", err)
	}
	if turnover.Status == models.TurnoverStatusCompleted || turnover.Status == models.TurnoverStatusArchived {
		return nil, fmt.Errorf("%w: turnover is %s", apperrors.ErrInvalidStatus, turnover.Status)
	}

	scope := repository.TurnoverScope{
		TeamID:           turnover.TeamID,
		ApplicationID:    turnover.ApplicationID,
		SubApplicationID: turnover.SubApplicationID,
	}
	if err := s.repo.Complete(id, scope); err != nil {
		return nil, fmt.Errorf("failed to complete turnover: %w", err)
	}

	turnover.Status = models.TurnoverStatusCompleted
	return turnover, nil
}

// Archive marks a turnover archived
func (s *TurnoverService) Archive(id uuid.UUID) error {
	if err := s.repo.SetStatus(id, models.TurnoverStatusArchived); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTurnoverNotFound
		}
		return fmt.Errorf("failed to archive turnover: %w", err)
	}
	return nil
}

// AddEntry appends an entry to an existing turnover
func (s *TurnoverService) AddEntry(turnoverID uuid.UUID, req *CreateEntryRequest) (*models.TurnoverEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EntryType.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidEntryType, req.EntryType)
	}
	if req.Priority != "" && !req.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidPriority, req.Priority)
	}

	turnover, err := s.repo.GetByID(turnoverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTurnoverNotFound
		}
		return nil, fmt.Errorf("failed to get turnover: %w", err)
	}
	if turnover.Status == models.TurnoverStatusArchived {
		return nil, fmt.Errorf("%w: turnover is archived", apperrors.ErrInvalidStatus)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.EntryPriorityNormal
	}
	entry := &models.TurnoverEntry{
		TurnoverID:  turnoverID,
		EntryType:   req.EntryType,
		Priority:    priority,
		Title:       req.Title,
		Description: req.Description,
		ReferenceID: req.ReferenceID,
		EntryStatus: req.EntryStatus,
		Comments:    req.Comments,
	}
	if err := s.entryRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return entry, nil
}

// GetEntry retrieves one turnover entry
func (s *TurnoverService) GetEntry(id uuid.UUID) (*models.TurnoverEntry, error) {
	entry, err := s.entryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTurnoverEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

// UpdateEntry updates an entry's content. Priority changes go through the
// flagging operations, not here.
func (s *TurnoverService) UpdateEntry(id uuid.UUID, req *UpdateEntryRequest) (*models.TurnoverEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EntryType.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidEntryType, req.EntryType)
	}

	entry, err := s.entryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTurnoverEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	entry.EntryType = req.EntryType
	entry.Title = req.Title
	entry.Description = req.Description
	entry.ReferenceID = req.ReferenceID
	entry.EntryStatus = req.EntryStatus
	entry.Comments = req.Comments

	if err := s.entryRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes a turnover entry
func (s *TurnoverService) DeleteEntry(id uuid.UUID) error {
	if err := s.entryRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTurnoverEntryNotFound
		}
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}
