package repository

import (
	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application. A TLA collision with another active
// application in the same team surfaces as gorm.ErrDuplicatedKey from the
// partial unique index.
func (r *ApplicationRepository) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetWithSubApplications retrieves an application with its sub-applications
func (r *ApplicationRepository) GetWithSubApplications(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("SubApplications").First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByTeamID retrieves a team's applications, optionally filtered by status.
// Soft-deleted applications are excluded unless explicitly requested.
func (r *ApplicationRepository) GetByTeamID(teamID uuid.UUID, status *models.ApplicationStatus, limit, offset int) ([]models.Application, int64, error) {
	var apps []models.Application
	var total int64

	query := r.db.Model(&models.Application{}).Where("team_id = ?", teamID)
	if status != nil {
		query = query.Where("status = ?", *status)
	} else {
		query = query.Where("status != ?", models.ApplicationStatusDeleted)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name").Limit(limit).Offset(offset).Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// Update updates an application
func (r *ApplicationRepository) Update(app *models.Application) error {
	return r.db.Save(app).Error
}

// SetStatus sets the status of an application (soft delete and archive path)
func (r *ApplicationRepository) SetStatus(id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ActiveTLAExists checks whether an active application in the team already
// uses the TLA. The partial unique index is the authoritative guard; this
// pre-check exists to return a descriptive error without attempting a write.
func (r *ApplicationRepository) ActiveTLAExists(teamID uuid.UUID, tla string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Application{}).
		Where("team_id = ? AND tla = ? AND status = ?", teamID, tla, models.ApplicationStatusActive)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Count returns the number of non-deleted applications
func (r *ApplicationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("status != ?", models.ApplicationStatusDeleted).
		Count(&count).Error
	return count, err
}
