package repository

import (
	"time"

	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationRepository handles database operations for team registration requests
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts a new registration request
func (r *RegistrationRepository) Create(req *models.TeamRegistrationRequest) error {
	return r.db.Create(req).Error
}

// GetByID retrieves a registration request by ID
func (r *RegistrationRepository) GetByID(id uuid.UUID) (*models.TeamRegistrationRequest, error) {
	var req models.TeamRegistrationRequest
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List retrieves registration requests, newest first, optionally filtered by status
func (r *RegistrationRepository) List(status *models.RegistrationStatus, limit, offset int) ([]models.TeamRegistrationRequest, int64, error) {
	var requests []models.TeamRegistrationRequest
	var total int64

	query := r.db.Model(&models.TeamRegistrationRequest{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// PendingExistsForName checks whether a pending request already claims the team name
func (r *RegistrationRepository) PendingExistsForName(teamName string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamRegistrationRequest{}).
		Where("team_name = ? AND status = ?", teamName, models.RegistrationStatusPending).
		Count(&count).Error
	return count > 0, err
}

// Approve marks a pending request approved and creates the team in one
// transaction. The status flip is a conditional update: if the request is no
// longer pending (a concurrent reviewer won), no row is affected and
// gorm.ErrRecordNotFound is returned without any mutation.
func (r *RegistrationRepository) Approve(id uuid.UUID, reviewer, comment string) (*models.Team, error) {
	var team *models.Team

	err := r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&models.TeamRegistrationRequest{}).
			Where("id = ? AND status = ?", id, models.RegistrationStatusPending).
			Updates(map[string]interface{}{
				"status":         models.RegistrationStatusApproved,
				"reviewed_by":    reviewer,
				"reviewed_at":    now,
				"review_comment": comment,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var req models.TeamRegistrationRequest
		if err := tx.First(&req, "id = ?", id).Error; err != nil {
			return err
		}

		team = &models.Team{
			Name:         req.TeamName,
			Description:  req.Description,
			UserGroup:    req.UserGroup,
			AdminGroup:   req.AdminGroup,
			ContactName:  req.ContactName,
			ContactEmail: req.ContactEmail,
			IsActive:     true,
		}
		return tx.Create(team).Error
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// Reject marks a pending request rejected with the same conditional-update
// guard as Approve. No team row is created.
func (r *RegistrationRepository) Reject(id uuid.UUID, reviewer, comment string) error {
	now := time.Now()
	result := r.db.Model(&models.TeamRegistrationRequest{}).
		Where("id = ? AND status = ?", id, models.RegistrationStatusPending).
		Updates(map[string]interface{}{
			"status":         models.RegistrationStatusRejected,
			"reviewed_by":    reviewer,
			"reviewed_at":    now,
			"review_comment": comment,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns the number of requests per status
func (r *RegistrationRepository) CountByStatus() (map[models.RegistrationStatus]int64, error) {
	type row struct {
		Status models.RegistrationStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.TeamRegistrationRequest{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.RegistrationStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}
