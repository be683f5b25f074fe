package service

import (
	"errors"
	"fmt"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/metrics"
	"ensemble-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationService handles team registration requests and their review
type RegistrationService struct {
	repo      repository.RegistrationRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo repository.RegistrationRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *RegistrationService {
	return &RegistrationService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// SubmitRegistrationRequest represents a team registration submission
type SubmitRegistrationRequest struct {
	TeamName     string `json:"team_name" validate:"required,min=2,max=100"`
	UserGroup    string `json:"user_group" validate:"required,max=100"`
	AdminGroup   string `json:"admin_group" validate:"required,max=100"`
	ContactName  string `json:"contact_name" validate:"required,max=100"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	RequestedBy  string `json:"requested_by" validate:"required,max=100"`
}

// ReviewRequest carries the reviewer's decision details
type ReviewRequest struct {
	ReviewedBy string `json:"reviewed_by" validate:"required,max=100"`
	Comment    string `json:"comment" validate:"max=500"`
}

// Submit validates and creates a pending registration request. A name that
// already belongs to an active team or to another pending request is rejected.
func (s *RegistrationService) Submit(req *SubmitRegistrationRequest) (*models.TeamRegistrationRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	taken, err := s.teamRepo.NameExists(req.TeamName)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if taken {
		return nil, apperrors.ErrTeamExists
	}

	pending, err := s.repo.PendingExistsForName(req.TeamName)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if pending {
		return nil, apperrors.ErrRegistrationPending
	}

	request := &models.TeamRegistrationRequest{
		TeamName:     req.TeamName,
		UserGroup:    req.UserGroup,
		AdminGroup:   req.AdminGroup,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		RequestedBy:  req.RequestedBy,
		Status:       models.RegistrationStatusPending,
	}
	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create registration request: %w", err)
	}

	metrics.RecordRegistration("submitted")
	return request, nil
}

// GetByID retrieves a registration request
func (s *RegistrationService) GetByID(id uuid.UUID) (*models.TeamRegistrationRequest, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRegistrationRequestNotFound
		}
		return nil, fmt.Errorf("failed to get registration request: %w", err)
	}
	return request, nil
}

// List retrieves registration requests, optionally filtered by status
func (s *RegistrationService) List(status *models.RegistrationStatus, page, pageSize int) ([]models.TeamRegistrationRequest, int64, error) {
	if status != nil && !status.IsValid() {
		return nil, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, *status)
	}

	page, pageSize = normalizePage(page, pageSize)
	requests, total, err := s.repo.List(status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list registration requests: %w", err)
	}
	return requests, total, nil
}

// Approve approves a pending request and creates the team. Only a request
// still in pending state can be approved; a concurrent decision loses.
func (s *RegistrationService) Approve(id uuid.UUID, req *ReviewRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.Approve(id, req.ReviewedBy, req.Comment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.classifyDecisionFailure(id)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to approve registration request: %w", err)
	}

	metrics.RecordRegistration("approved")
	return team, nil
}

// Reject rejects a pending request
func (s *RegistrationService) Reject(id uuid.UUID, req *ReviewRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Reject(id, req.ReviewedBy, req.Comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.classifyDecisionFailure(id)
		}
		return fmt.Errorf("failed to reject registration request: %w", err)
	}

	metrics.RecordRegistration("rejected")
	return nil
}

// CountByStatus returns request counts per status for the admin dashboard
func (s *RegistrationService) CountByStatus() (map[models.RegistrationStatus]int64, error) {
	counts, err := s.repo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count registration requests: %w", err)
	}
	return counts, nil
}

// classifyDecisionFailure distinguishes a missing request from one already
// decided, after the conditional update matched no rows
func (s *RegistrationService) classifyDecisionFailure(id uuid.UUID) error {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRegistrationRequestNotFound
		}
		return fmt.Errorf("failed to get registration request: %w", err)
	}
	if request.Status != models.RegistrationStatusPending {
		return apperrors.ErrRequestNotPending
	}
	return apperrors.ErrRegistrationRequestNotFound
}
