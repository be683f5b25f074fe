package service

import (
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

// Age buckets for GroupByAge, in ascending order
const (
	AgeBucketUnderHour  = "<1h"
	AgeBucketUnderDay   = "<24h"
	AgeBucketUnderThree = "<72h"
	AgeBucketUnderWeek  = "<168h"
	AgeBucketOverWeek   = ">=168h"
)

// FlaggingService handles entry priority management and read-side grouping
type FlaggingService struct {
	entryRepo repository.TurnoverEntryRepositoryInterface
	validator *validator.Validate
}

// NewFlaggingService creates a new flagging service
func NewFlaggingService(entryRepo repository.TurnoverEntryRepositoryInterface, validator *validator.Validate) *FlaggingService {
	return &FlaggingService{
		entryRepo: entryRepo,
		validator: validator,
	}
}

// FlagEntryRequest represents the payload to set an entry's priority
type FlagEntryRequest struct {
	EntryID  uuid.UUID            `json:"entry_id" validate:"required"`
	Priority models.EntryPriority `json:"priority" validate:"required"`
	Comment  string               `json:"comment" validate:"max=1000"`
	SetBy    string               `json:"-"` // derived from bearer token
}

// BulkFlagRequest represents the payload to set priority on several entries
type BulkFlagRequest struct {
	EntryIDs []uuid.UUID          `json:"entry_ids" validate:"required,min=1"`
	Priority models.EntryPriority `json:"priority" validate:"required"`
	Comment  string               `json:"comment" validate:"max=1000"`
	SetBy    string               `json:"-"`
}

// BulkFlagResponse reports how many entries were updated
type BulkFlagResponse struct {
	Updated int64 `json:"updated"`
}

// FlaggedCountsResponse aggregates flagged entries by priority and type
type FlaggedCountsResponse struct {
	Total      int64                          `json:"total"`
	ByPriority map[models.EntryPriority]int64 `json:"by_priority"`
	ByType     map[models.EntryType]int64     `json:"by_type"`
}

// FlagEntry sets the priority of one entry. Any priority may be set from any
// other; there is no transition validation.
func (s *FlaggingService) FlagEntry(req *FlagEntryRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.Priority.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidPriority, req.Priority)
	}

	if err := s.entryRepo.SetPriority(req.EntryID, req.Priority, req.Comment, req.SetBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTurnoverEntryNotFound
		}
		return fmt.Errorf("failed to flag entry: %w", err)
	}

	metrics.RecordFlaggingOperation("flag")
	return nil
}

// UnflagEntry resets an entry's priority to normal
func (s *FlaggingService) UnflagEntry(entryID uuid.UUID) error {
	if err := s.entryRepo.SetPriority(entryID, models.EntryPriorityNormal, "", ""); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTurnoverEntryNotFound
		}
		return fmt.Errorf("failed to unflag entry: %w", err)
	}

	metrics.RecordFlaggingOperation("unflag")
	return nil
}

// BulkFlagEntries sets the priority on exactly the given entry ids
func (s *FlaggingService) BulkFlagEntries(req *BulkFlagRequest) (*BulkFlagResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.EntryIDs) == 0 {
		return nil, apperrors.ErrNoEntryIDs
	}
	if !req.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidPriority, req.Priority)
	}

	updated, err := s.entryRepo.BulkSetPriority(req.EntryIDs, req.Priority, req.Comment, req.SetBy)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk flag entries: %w", err)
	}

	metrics.RecordFlaggingOperation("bulk_flag")
	return &BulkFlagResponse{Updated: updated}, nil
}

// GetFlaggedEntries returns the flagged entries in scope, optionally
// narrowed to one priority
func (s *FlaggingService) GetFlaggedEntries(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, priority *models.EntryPriority) ([]models.TurnoverEntry, error) {
	if priority != nil && !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidPriority, *priority)
	}

	entries, err := s.entryRepo.GetFlagged(teamID, applicationID, subApplicationID, priority)
	if err != nil {
		return nil, fmt.Errorf("failed to get flagged entries: %w", err)
	}
	return entries, nil
}

// GetFlaggedCounts aggregates a team's flagged entries by priority and type
func (s *FlaggingService) GetFlaggedCounts(teamID uuid.UUID) (*FlaggedCountsResponse, error) {
	byPriority, err := s.entryRepo.CountByPriority(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count by priority: %w", err)
	}
	byType, err := s.entryRepo.CountByType(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count by type: %w", err)
	}

	var total int64
	for _, count := range byPriority {
		total += count
	}

	return &FlaggedCountsResponse{
		Total:      total,
		ByPriority: byPriority,
		ByType:     byType,
	}, nil
}

// The grouping helpers below partition an already-fetched slice in a single
// pass. They are presentation groupings, not persisted state.

// GroupByType partitions entries by entry type
func GroupByType(entries []models.TurnoverEntry) map[models.EntryType][]models.TurnoverEntry {
	groups := make(map[models.EntryType][]models.TurnoverEntry)
	for _, e := range entries {
		groups[e.EntryType] = append(groups[e.EntryType], e)
	}
	return groups
}

// GroupByPriority partitions entries by priority
func GroupByPriority(entries []models.TurnoverEntry) map[models.EntryPriority][]models.TurnoverEntry {
	groups := make(map[models.EntryPriority][]models.TurnoverEntry)
	for _, e := range entries {
		groups[e.Priority] = append(groups[e.Priority], e)
	}
	return groups
}

// GroupByDate partitions entries by the calendar day they were flagged,
// falling back to creation day for entries never flagged
func GroupByDate(entries []models.TurnoverEntry) map[string][]models.TurnoverEntry {
	groups := make(map[string][]models.TurnoverEntry)
	for _, e := range entries {
		at := e.CreatedAt
		if e.FlaggedAt != nil {
			at = *e.FlaggedAt
		}
		day := at.Format("2006-01-02")
		groups[day] = append(groups[day], e)
	}
	return groups
}

// GroupByStatus partitions entries by their free-text entry status
func GroupByStatus(entries []models.TurnoverEntry) map[string][]models.TurnoverEntry {
	groups := make(map[string][]models.TurnoverEntry)
	for _, e := range entries {
		groups[e.EntryStatus] = append(groups[e.EntryStatus], e)
	}
	return groups
}

// GroupByAge partitions entries into fixed age buckets relative to now,
// measured from flag time (or creation when never flagged)
func GroupByAge(entries []models.TurnoverEntry, now time.Time) map[string][]models.TurnoverEntry {
	groups := make(map[string][]models.TurnoverEntry)
	for _, e := range entries {
		at := e.CreatedAt
		if e.FlaggedAt != nil {
			at = *e.FlaggedAt
		}
		bucket := AgeBucket(now.Sub(at))
		groups[bucket] = append(groups[bucket], e)
	}
	return groups
}

// AgeBucket maps an age to its display bucket
func AgeBucket(age time.Duration) string {
	switch {
	case age < time.Hour:
		return AgeBucketUnderHour
	case age < 24*time.Hour:
		return AgeBucketUnderDay
	case age < 72*time.Hour:
		return AgeBucketUnderThree
	case age < 168*time.Hour:
		return AgeBucketUnderWeek
	default:
		return AgeBucketOverWeek
	}
}
