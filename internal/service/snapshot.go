package service

import (
	"encoding/json"
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

// SnapshotService handles daily turnover snapshots. Snapshots are immutable;
// there is no update or delete.
type SnapshotService struct {
	repo         repository.SnapshotRepositoryInterface
	turnoverRepo repository.TurnoverRepositoryInterface
	validator    *validator.Validate
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(repo repository.SnapshotRepositoryInterface, turnoverRepo repository.TurnoverRepositoryInterface, validator *validator.Validate) *SnapshotService {
	return &SnapshotService{
		repo:         repo,
		turnoverRepo: turnoverRepo,
		validator:    validator,
	}
}

// CreateSnapshotRequest represents the request to snapshot a scope's latest
// completed turnover for a given date
type CreateSnapshotRequest struct {
	TeamID           uuid.UUID  `json:"team_id" validate:"required"`
	ApplicationID    *uuid.UUID `json:"application_id,omitempty"`
	SubApplicationID *uuid.UUID `json:"sub_application_id,omitempty"`
	SnapshotDate     *time.Time `json:"snapshot_date,omitempty"`
}

// snapshotPayload is the frozen shape stored in turnover_data
type snapshotPayload struct {
	TurnoverID   uuid.UUID              `json:"turnover_id"`
	HandoverFrom string                 `json:"handover_from"`
	HandoverTo   string                 `json:"handover_to"`
	TurnoverDate time.Time              `json:"turnover_date"`
	Summary      string                 `json:"summary"`
	Entries      []models.TurnoverEntry `json:"entries"`
}

// Create freezes the scope's latest completed turnover for the date. One
// snapshot per scope per day; a second attempt is a conflict.
func (s *SnapshotService) Create(req *CreateSnapshotRequest) (*models.TurnoverSnapshot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.SubApplicationID != nil && req.ApplicationID == nil {
		return nil, apperrors.NewValidationError("application_id", "sub_application_id requires application_id")
	}

	scope := repository.TurnoverScope{
		TeamID:           req.TeamID,
		ApplicationID:    req.ApplicationID,
		SubApplicationID: req.SubApplicationID,
	}

	turnover, err := s.turnoverRepo.GetLatestCompleted(scope)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTurnoverNotFound
		}
		return nil, fmt.Errorf("failed to get latest completed turnover: %w", err)
	}

	date := time.Now()
	if req.SnapshotDate != nil {
		date = *req.SnapshotDate
	}
	date = date.Truncate(24 * time.Hour)

	payload := snapshotPayload{
		TurnoverID:   turnover.ID,
		HandoverFrom: turnover.HandoverFrom,
		HandoverTo:   turnover.HandoverTo,
		TurnoverDate: turnover.TurnoverDate,
		Summary:      turnover.Summary,
		Entries:      turnover.Entries,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot data: %w", err)
	}

	snapshot := &models.TurnoverSnapshot{
		TeamID:           req.TeamID,
		ApplicationID:    req.ApplicationID,
		SubApplicationID: req.SubApplicationID,
		SnapshotDate:     date,
		TurnoverData:     data,
		EntryCount:       len(turnover.Entries),
	}
	if err := s.repo.Create(snapshot); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSnapshotExists
		}
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}
	return snapshot, nil
}

// GetByID retrieves a snapshot
func (s *SnapshotService) GetByID(id uuid.UUID) (*models.TurnoverSnapshot, error) {
	snapshot, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snapshot, nil
}

// GetByDate retrieves a scope's snapshot for a specific date
func (s *SnapshotService) GetByDate(scope repository.TurnoverScope, date time.Time) (*models.TurnoverSnapshot, error) {
	snapshot, err := s.repo.GetByScopeAndDate(scope, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snapshot, nil
}

// ListByTeam retrieves a team's snapshots, optionally bounded by date range
func (s *SnapshotService) ListByTeam(teamID uuid.UUID, from, to *time.Time, page, pageSize int) ([]models.TurnoverSnapshot, int64, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, 0, apperrors.NewValidationError("to", "date range end precedes start")
	}

	page, pageSize = normalizePage(page, pageSize)
	snapshots, total, err := s.repo.ListByTeam(teamID, from, to, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, total, nil
}
