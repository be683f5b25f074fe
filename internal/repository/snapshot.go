package repository

import (
	"time"

	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SnapshotRepository handles database operations for turnover snapshots
type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create appends a snapshot row. A duplicate (scope, date) surfaces as
// gorm.ErrDuplicatedKey; snapshots are never overwritten.
func (r *SnapshotRepository) Create(snapshot *models.TurnoverSnapshot) error {
	return r.db.Create(snapshot).Error
}

// GetByID retrieves a snapshot by ID
func (r *SnapshotRepository) GetByID(id uuid.UUID) (*models.TurnoverSnapshot, error) {
	var snapshot models.TurnoverSnapshot
	err := r.db.First(&snapshot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetByScopeAndDate retrieves the snapshot for a scope on a given day
func (r *SnapshotRepository) GetByScopeAndDate(scope TurnoverScope, date time.Time) (*models.TurnoverSnapshot, error) {
	var snapshot models.TurnoverSnapshot
	query := scopeCondition(r.db.Model(&models.TurnoverSnapshot{}), scope).
		Where("snapshot_date = ?", date.Format("2006-01-02"))
	err := query.First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListByTeam retrieves a team's snapshots, newest first, optionally
// restricted to a date range
func (r *SnapshotRepository) ListByTeam(teamID uuid.UUID, from, to *time.Time, limit, offset int) ([]models.TurnoverSnapshot, int64, error) {
	var snapshots []models.TurnoverSnapshot
	var total int64

	query := r.db.Model(&models.TurnoverSnapshot{}).Where("team_id = ?", teamID)
	if from != nil {
		query = query.Where("snapshot_date >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		query = query.Where("snapshot_date <= ?", to.Format("2006-01-02"))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("snapshot_date DESC").Limit(limit).Offset(offset).Find(&snapshots).Error
	if err != nil {
		return nil, 0, err
	}

	return snapshots, total, nil
}
