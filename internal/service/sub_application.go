package service

import (
	"errors"
	"fmt"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubApplicationService handles business logic for sub-applications
type SubApplicationService struct {
	repo      repository.SubApplicationRepositoryInterface
	appRepo   repository.ApplicationRepositoryInterface
	validator *validator.Validate
}

// NewSubApplicationService creates a new sub-application service
func NewSubApplicationService(repo repository.SubApplicationRepositoryInterface, appRepo repository.ApplicationRepositoryInterface, validator *validator.Validate) *SubApplicationService {
	return &SubApplicationService{
		repo:      repo,
		appRepo:   appRepo,
		validator: validator,
	}
}

// CreateSubApplicationRequest represents the request to create a sub-application
type CreateSubApplicationRequest struct {
	ApplicationID uuid.UUID `json:"application_id" validate:"required"`
	Name          string    `json:"name" validate:"required,min=2,max=100"`
	Description   string    `json:"description" validate:"max=500"`
}

// UpdateSubApplicationRequest represents the request to update a sub-application
type UpdateSubApplicationRequest struct {
	Name        string                       `json:"name" validate:"required,min=2,max=100"`
	Description string                       `json:"description" validate:"max=500"`
	Status      *models.SubApplicationStatus `json:"status,omitempty"`
}

// Create validates and creates a sub-application under an existing application
func (s *SubApplicationService) Create(req *CreateSubApplicationRequest) (*models.SubApplication, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	app, err := s.appRepo.GetByID(req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to verify application: %w", err)
	}
	if app.Status == models.ApplicationStatusDeleted {
		return nil, apperrors.ErrApplicationNotFound
	}

	exists, err := s.repo.NameExists(req.ApplicationID, req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check sub-application name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrSubApplicationExists
	}

	sub := &models.SubApplication{
		ApplicationID: req.ApplicationID,
		Name:          req.Name,
		Description:   req.Description,
		Status:        models.SubApplicationStatusActive,
	}
	if err := s.repo.Create(sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSubApplicationExists
		}
		return nil, fmt.Errorf("failed to create sub-application: %w", err)
	}
	return sub, nil
}

// GetByID retrieves a sub-application
func (s *SubApplicationService) GetByID(id uuid.UUID) (*models.SubApplication, error) {
	sub, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get sub-application: %w", err)
	}
	return sub, nil
}

// GetByApplication retrieves all sub-applications of an application
func (s *SubApplicationService) GetByApplication(applicationID uuid.UUID) ([]models.SubApplication, error) {
	subs, err := s.repo.GetByApplicationID(applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sub-applications: %w", err)
	}
	return subs, nil
}

// Update validates and updates a sub-application
func (s *SubApplicationService) Update(id uuid.UUID, req *UpdateSubApplicationRequest) (*models.SubApplication, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, *req.Status)
	}

	sub, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get sub-application: %w", err)
	}

	if req.Name != sub.Name {
		exists, err := s.repo.NameExists(sub.ApplicationID, req.Name, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check sub-application name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrSubApplicationExists
		}
	}

	sub.Name = req.Name
	sub.Description = req.Description
	if req.Status != nil {
		sub.Status = *req.Status
	}

	if err := s.repo.Update(sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSubApplicationExists
		}
		return nil, fmt.Errorf("failed to update sub-application: %w", err)
	}
	return sub, nil
}

// Delete removes a sub-application
func (s *SubApplicationService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubApplicationNotFound
		}
		return fmt.Errorf("failed to delete sub-application: %w", err)
	}
	return nil
}
