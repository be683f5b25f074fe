package repository

import (
	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubApplicationRepository handles database operations for sub-applications
type SubApplicationRepository struct {
	db *gorm.DB
}

// NewSubApplicationRepository creates a new sub-application repository
func NewSubApplicationRepository(db *gorm.DB) *SubApplicationRepository {
	return &SubApplicationRepository{db: db}
}

// Create inserts a new sub-application. A name collision within the
// application surfaces as gorm.ErrDuplicatedKey from the unique index.
func (r *SubApplicationRepository) Create(sub *models.SubApplication) error {
	return r.db.Create(sub).Error
}

// GetByID retrieves a sub-application by ID
func (r *SubApplicationRepository) GetByID(id uuid.UUID) (*models.SubApplication, error) {
	var sub models.SubApplication
	err := r.db.First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByApplicationID retrieves all sub-applications of an application
func (r *SubApplicationRepository) GetByApplicationID(applicationID uuid.UUID) ([]models.SubApplication, error) {
	var subs []models.SubApplication
	err := r.db.Where("application_id = ?", applicationID).Order("name").Find(&subs).Error
	return subs, err
}

// NameExists checks whether the application already has a sub-application with the name
func (r *SubApplicationRepository) NameExists(applicationID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.SubApplication{}).
		Where("application_id = ? AND name = ?", applicationID, name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a sub-application
func (r *SubApplicationRepository) Update(sub *models.SubApplication) error {
	return r.db.Save(sub).Error
}

// Delete hard-deletes a sub-application. Unlike applications, sub-application
// rows are removed outright.
func (r *SubApplicationRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.SubApplication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
