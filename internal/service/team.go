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

// TeamService handles business logic for teams. Teams are only created
// through registration approval, so there is no Create here.
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateTeamRequest represents the request to update a team's details
type UpdateTeamRequest struct {
	UserGroup    string `json:"user_group" validate:"required,max=100"`
	AdminGroup   string `json:"admin_group" validate:"required,max=100"`
	ContactName  string `json:"contact_name" validate:"required,max=100"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
}

// GetByID retrieves a team by id
func (s *TeamService) GetByID(id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetByName retrieves a team by name
func (s *TeamService) GetByName(name string) (*models.Team, error) {
	team, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// List retrieves teams with pagination
func (s *TeamService) List(activeOnly bool, page, pageSize int) ([]models.Team, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	teams, total, err := s.repo.GetAll(activeOnly, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, total, nil
}

// Update validates and updates a team's editable fields. The team name is
// fixed after approval.
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	team.UserGroup = req.UserGroup
	team.AdminGroup = req.AdminGroup
	team.ContactName = req.ContactName
	team.ContactEmail = req.ContactEmail

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

// Deactivate marks a team inactive. Its data stays in place but new
// inventory writes are rejected.
func (s *TeamService) Deactivate(id uuid.UUID) error {
	if err := s.repo.SetActive(id, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to deactivate team: %w", err)
	}
	return nil
}

// Reactivate marks a team active again
func (s *TeamService) Reactivate(id uuid.UUID) error {
	if err := s.repo.SetActive(id, true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to reactivate team: %w", err)
	}
	return nil
}
