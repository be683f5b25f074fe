package repository

import (
	"time"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DraftRepository handles database operations for turnover drafts
type DraftRepository struct {
	db *gorm.DB
}

// NewDraftRepository creates a new draft repository
func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Upsert atomically inserts the draft or, when the scope's draft row already
// exists, overwrites its handover names and entries in place. The conflict
// target is the NULLS NOT DISTINCT unique index on
// (team_id, application_id, sub_application_id, status), so two concurrent
// saves for the same scope can never produce two rows.
func (r *DraftRepository) Upsert(draft *models.TurnoverDraft) error {
	defer metrics.TrackDBOperation("draft_upsert")(time.Now())

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "team_id"},
			{Name: "application_id"},
			{Name: "sub_application_id"},
			{Name: "status"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"handover_from",
			"handover_to",
			"entries",
			"updated_at",
		}),
	}).Create(draft).Error
}

// GetByScope retrieves the draft for a scope, or gorm.ErrRecordNotFound
func (r *DraftRepository) GetByScope(scope TurnoverScope) (*models.TurnoverDraft, error) {
	var draft models.TurnoverDraft
	query := scopeCondition(r.db.Model(&models.TurnoverDraft{}), scope).
		Where("status = ?", models.TurnoverStatusDraft)
	err := query.First(&draft).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// GetByID retrieves a draft by ID
func (r *DraftRepository) GetByID(id uuid.UUID) (*models.TurnoverDraft, error) {
	var draft models.TurnoverDraft
	err := r.db.First(&draft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// ListByTeam retrieves all drafts of a team, most recently touched first
func (r *DraftRepository) ListByTeam(teamID uuid.UUID) ([]models.TurnoverDraft, error) {
	var drafts []models.TurnoverDraft
	err := r.db.Where("team_id = ?", teamID).Order("updated_at DESC").Find(&drafts).Error
	return drafts, err
}

// Delete hard-deletes a draft by ID
func (r *DraftRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.TurnoverDraft{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
