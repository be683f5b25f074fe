package repository

import (
	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TurnoverScope identifies a (team, application, sub-application) triple.
// Application and sub-application are optional narrowing.
type TurnoverScope struct {
	TeamID           uuid.UUID
	ApplicationID    *uuid.UUID
	SubApplicationID *uuid.UUID
}

// scopeCondition applies the scope columns, matching NULL where the scope
// leaves a level unset so team-wide and application-wide records stay distinct
func scopeCondition(query *gorm.DB, scope TurnoverScope) *gorm.DB {
	query = query.Where("team_id = ?", scope.TeamID)
	if scope.ApplicationID != nil {
		query = query.Where("application_id = ?", *scope.ApplicationID)
	} else {
		query = query.Where("application_id IS NULL")
	}
	if scope.SubApplicationID != nil {
		query = query.Where("sub_application_id = ?", *scope.SubApplicationID)
	} else {
		query = query.Where("sub_application_id IS NULL")
	}
	return query
}

// TurnoverRepository handles database operations for turnovers
type TurnoverRepository struct {
	db *gorm.DB
}

// NewTurnoverRepository creates a new turnover repository
func NewTurnoverRepository(db *gorm.DB) *TurnoverRepository {
	return &TurnoverRepository{db: db}
}

// Create inserts a new turnover, optionally with entries
func (r *TurnoverRepository) Create(turnover *models.Turnover) error {
	return r.db.Create(turnover).Error
}

// GetByID retrieves a turnover with its entries
func (r *TurnoverRepository) GetByID(id uuid.UUID) (*models.Turnover, error) {
	var turnover models.Turnover
	err := r.db.Preload("Entries").First(&turnover, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &turnover, nil
}

// List retrieves a team's turnovers, newest first, optionally filtered by
// application, sub-application and status
func (r *TurnoverRepository) List(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, status *models.TurnoverStatus, limit, offset int) ([]models.Turnover, int64, error) {
	var turnovers []models.Turnover
	var total int64

	query := r.db.Model(&models.Turnover{}).Where("team_id = ?", teamID)
	if applicationID != nil {
		query = query.Where("application_id = ?", *applicationID)
	}
	if subApplicationID != nil {
		query = query.Where("sub_application_id = ?", *subApplicationID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("turnover_date DESC").Limit(limit).Offset(offset).Find(&turnovers).Error
	if err != nil {
		return nil, 0, err
	}

	return turnovers, total, nil
}

// GetLatestCompleted returns the most recently updated completed turnover in
// scope with entries attached, or gorm.ErrRecordNotFound
func (r *TurnoverRepository) GetLatestCompleted(scope TurnoverScope) (*models.Turnover, error) {
	var turnover models.Turnover
	query := scopeCondition(r.db.Model(&models.Turnover{}), scope).
		Where("status = ?", models.TurnoverStatusCompleted)
	err := query.Preload("Entries").Order("updated_at DESC").First(&turnover).Error
	if err != nil {
		return nil, err
	}
	return &turnover, nil
}

// SetStatus sets the status of a turnover
func (r *TurnoverRepository) SetStatus(id uuid.UUID, status models.TurnoverStatus) error {
	result := r.db.Model(&models.Turnover{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Complete marks the turnover completed and removes the scope's draft in the
// same transaction so the next prefill falls through to this turnover
func (r *TurnoverRepository) Complete(id uuid.UUID, scope TurnoverScope) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Turnover{}).Where("id = ?", id).
			Update("status", models.TurnoverStatusCompleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return scopeCondition(tx.Where("status = ?", models.TurnoverStatusDraft), scope).
			Delete(&models.TurnoverDraft{}).Error
	})
}
