package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/metrics"
	"ensemble-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrefillSource identifies which tier of the prefill fallback produced the data
type PrefillSource string

const (
	PrefillSourceDraft    PrefillSource = "draft"
	PrefillSourcePrevious PrefillSource = "previous"
	PrefillSourceDefault  PrefillSource = "default"
)

// DraftService handles turnover draft persistence and prefill lookups
type DraftService struct {
	draftRepo    repository.DraftRepositoryInterface
	turnoverRepo repository.TurnoverRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	validator    *validator.Validate
}

// NewDraftService creates a new draft service
func NewDraftService(draftRepo repository.DraftRepositoryInterface, turnoverRepo repository.TurnoverRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *DraftService {
	return &DraftService{
		draftRepo:    draftRepo,
		turnoverRepo: turnoverRepo,
		teamRepo:     teamRepo,
		validator:    validator,
	}
}

// SaveDraftRequest represents the payload to save or auto-save a draft
type SaveDraftRequest struct {
	TeamID           uuid.UUID           `json:"team_id" validate:"required"`
	ApplicationID    *uuid.UUID          `json:"application_id,omitempty"`
	SubApplicationID *uuid.UUID          `json:"sub_application_id,omitempty"`
	HandoverFrom     string              `json:"handover_from" validate:"max=100"`
	HandoverTo       string              `json:"handover_to" validate:"max=100"`
	Entries          []models.DraftEntry `json:"entries" validate:"dive"`
}

// SaveDraftResponse reports the saved draft id and whether a new row was created
type SaveDraftResponse struct {
	DraftID    uuid.UUID `json:"draft_id"`
	IsNewDraft bool      `json:"is_new_draft"`
	SavedAt    time.Time `json:"saved_at"`
}

// DraftResponse represents a draft in API responses
type DraftResponse struct {
	ID               uuid.UUID           `json:"id"`
	TeamID           uuid.UUID           `json:"team_id"`
	ApplicationID    *uuid.UUID          `json:"application_id,omitempty"`
	SubApplicationID *uuid.UUID          `json:"sub_application_id,omitempty"`
	HandoverFrom     string              `json:"handover_from"`
	HandoverTo       string              `json:"handover_to"`
	Entries          []models.DraftEntry `json:"entries"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// PrefillResponse is the three-tier prefill result: an existing draft, the
// last completed turnover in scope, or an empty default shell
type PrefillResponse struct {
	Source       PrefillSource       `json:"source"`
	HandoverFrom string              `json:"handover_from"`
	HandoverTo   string              `json:"handover_to"`
	Entries      []models.DraftEntry `json:"entries"`
}

func scopeOf(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID) repository.TurnoverScope {
	return repository.TurnoverScope{
		TeamID:           teamID,
		ApplicationID:    applicationID,
		SubApplicationID: subApplicationID,
	}
}

// SaveDraft validates and upserts the scope's draft. The write itself is an
// atomic upsert against the draft unique index; the preceding lookup only
// determines the is_new_draft flag.
func (s *DraftService) SaveDraft(req *SaveDraftRequest) (*SaveDraftResponse, error) {
	return s.save(req, "save")
}

// AutoSaveDraft is SaveDraft invoked by the client's periodic timer; it
// differs only in how the outcome is reported
func (s *DraftService) AutoSaveDraft(req *SaveDraftRequest) (*SaveDraftResponse, error) {
	return s.save(req, "autosave")
}

func (s *DraftService) save(req *SaveDraftRequest, kind string) (*SaveDraftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		metrics.RecordDraftSave(kind, "error")
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	for _, entry := range req.Entries {
		if !entry.EntryType.IsValid() {
			metrics.RecordDraftSave(kind, "error")
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidEntryType, entry.EntryType)
		}
		if entry.Priority != "" && !entry.Priority.IsValid() {
			metrics.RecordDraftSave(kind, "error")
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidPriority, entry.Priority)
		}
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	entriesJSON, err := json.Marshal(req.Entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entries: %w", err)
	}

	scope := scopeOf(req.TeamID, req.ApplicationID, req.SubApplicationID)
	existing, err := s.draftRepo.GetByScope(scope)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing draft: %w", err)
	}

	draft := &models.TurnoverDraft{
		TeamID:           req.TeamID,
		ApplicationID:    req.ApplicationID,
		SubApplicationID: req.SubApplicationID,
		Status:           models.TurnoverStatusDraft,
		HandoverFrom:     req.HandoverFrom,
		HandoverTo:       req.HandoverTo,
		Entries:          entriesJSON,
	}
	if existing != nil {
		draft.ID = existing.ID
	}

	if err := s.draftRepo.Upsert(draft); err != nil {
		metrics.RecordDraftSave(kind, "error")
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	outcome := "updated"
	if existing == nil {
		outcome = "created"
	}
	metrics.RecordDraftSave(kind, outcome)

	return &SaveDraftResponse{
		DraftID:    draft.ID,
		IsNewDraft: existing == nil,
		SavedAt:    time.Now(),
	}, nil
}

// GetDraft returns the scope's draft, or nil when none exists. Absence is
// not an error.
func (s *DraftService) GetDraft(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID) (*DraftResponse, error) {
	draft, err := s.draftRepo.GetByScope(scopeOf(teamID, applicationID, subApplicationID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return s.toResponse(draft)
}

// ListDrafts returns all of a team's drafts, most recently touched first
func (s *DraftService) ListDrafts(teamID uuid.UUID) ([]DraftResponse, error) {
	drafts, err := s.draftRepo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	responses := make([]DraftResponse, 0, len(drafts))
	for i := range drafts {
		resp, err := s.toResponse(&drafts[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// DeleteDraft hard-deletes a draft by id
func (s *DraftService) DeleteDraft(id uuid.UUID) error {
	if err := s.draftRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDraftNotFound
		}
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// GetPrefillData resolves the editor's starting state for a scope:
// an existing draft wins, else the last completed turnover, else an empty
// shell carrying the supplied handover names. Every call re-queries; nothing
// is cached.
func (s *DraftService) GetPrefillData(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, handoverFrom, handoverTo string) (*PrefillResponse, error) {
	scope := scopeOf(teamID, applicationID, subApplicationID)

	draft, err := s.draftRepo.GetByScope(scope)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up draft: %w", err)
	}
	if draft != nil {
		entries, err := decodeDraftEntries(draft.Entries)
		if err != nil {
			return nil, err
		}
		return &PrefillResponse{
			Source:       PrefillSourceDraft,
			HandoverFrom: draft.HandoverFrom,
			HandoverTo:   draft.HandoverTo,
			Entries:      entries,
		}, nil
	}

	previous, err := s.turnoverRepo.GetLatestCompleted(scope)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up previous turnover: %w", err)
	}
	if previous != nil {
		entries := make([]models.DraftEntry, 0, len(previous.Entries))
		for _, e := range previous.Entries {
			entries = append(entries, models.DraftEntry{
				EntryType:   e.EntryType,
				Priority:    e.Priority,
				Title:       e.Title,
				Description: e.Description,
				ReferenceID: e.ReferenceID,
				EntryStatus: e.EntryStatus,
				Comments:    e.Comments,
			})
		}
		return &PrefillResponse{
			Source:       PrefillSourcePrevious,
			HandoverFrom: previous.HandoverFrom,
			HandoverTo:   previous.HandoverTo,
			Entries:      entries,
		}, nil
	}

	return &PrefillResponse{
		Source:       PrefillSourceDefault,
		HandoverFrom: handoverFrom,
		HandoverTo:   handoverTo,
		Entries:      []models.DraftEntry{},
	}, nil
}

func (s *DraftService) toResponse(draft *models.TurnoverDraft) (*DraftResponse, error) {
	entries, err := decodeDraftEntries(draft.Entries)
	if err != nil {
		return nil, err
	}
	return &DraftResponse{
		ID:               draft.ID,
		TeamID:           draft.TeamID,
		ApplicationID:    draft.ApplicationID,
		SubApplicationID: draft.SubApplicationID,
		HandoverFrom:     draft.HandoverFrom,
		HandoverTo:       draft.HandoverTo,
		Entries:          entries,
		UpdatedAt:        draft.UpdatedAt,
	}, nil
}

func decodeDraftEntries(raw json.RawMessage) ([]models.DraftEntry, error) {
	if len(raw) == 0 {
		return []models.DraftEntry{}, nil
	}
	var entries []models.DraftEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode draft entries: %w", err)
	}
	return entries, nil
}
