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

// LinkService handles business logic for team links, categories and tags
type LinkService struct {
	repo      repository.LinkRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewLinkService creates a new link service
func NewLinkService(repo repository.LinkRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *LinkService {
	return &LinkService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateLinkRequest represents the request to create a link
type CreateLinkRequest struct {
	TeamID      uuid.UUID  `json:"team_id" validate:"required"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        string     `json:"name" validate:"required,max=100"`
	URL         string     `json:"url" validate:"required,url,max=2000"`
	Description string     `json:"description" validate:"max=500"`
	Tags        []string   `json:"tags" validate:"max=10,dive,required,max=50"`
}

// UpdateLinkRequest represents the request to update a link
type UpdateLinkRequest struct {
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        string     `json:"name" validate:"required,max=100"`
	URL         string     `json:"url" validate:"required,url,max=2000"`
	Description string     `json:"description" validate:"max=500"`
}

// CreateCategoryRequest represents the request to create a link category
type CreateCategoryRequest struct {
	TeamID *uuid.UUID `json:"team_id,omitempty"`
	Name   string     `json:"name" validate:"required,max=100"`
	Icon   string     `json:"icon" validate:"max=50"`
}

// PopularLink pairs a link with its access count
type PopularLink struct {
	Link        models.Link `json:"link"`
	AccessCount int64       `json:"access_count"`
}

// Create validates and creates a link, attaching tags by name
func (s *LinkService) Create(req *CreateLinkRequest) (*models.Link, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if !team.IsActive {
		return nil, apperrors.ErrTeamInactive
	}

	if req.CategoryID != nil {
		if err := s.checkCategory(*req.CategoryID, req.TeamID); err != nil {
			return nil, err
		}
	}

	link := &models.Link{
		TeamID:      req.TeamID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
	}
	if err := s.repo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	for _, name := range req.Tags {
		tag, err := s.repo.GetOrCreateTag(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tag %q: %w", name, err)
		}
		if err := s.repo.AttachTag(link.ID, tag.ID); err != nil {
			return nil, fmt.Errorf("failed to attach tag %q: %w", name, err)
		}
	}

	return s.GetByID(link.ID)
}

// GetByID retrieves a link with its tags
func (s *LinkService) GetByID(id uuid.UUID) (*models.Link, error) {
	link, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return link, nil
}

// GetByTeam retrieves a team's links, optionally filtered by category or tag
func (s *LinkService) GetByTeam(teamID uuid.UUID, categoryID *uuid.UUID, tag string) ([]models.Link, error) {
	links, err := s.repo.GetByTeamID(teamID, categoryID, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return links, nil
}

// Update validates and updates a link
func (s *LinkService) Update(id uuid.UUID, req *UpdateLinkRequest) (*models.Link, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	link, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	if req.CategoryID != nil {
		if err := s.checkCategory(*req.CategoryID, link.TeamID); err != nil {
			return nil, err
		}
	}

	link.CategoryID = req.CategoryID
	link.Name = req.Name
	link.URL = req.URL
	link.Description = req.Description

	if err := s.repo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}
	return link, nil
}

// Delete removes a link and its tag assignments
func (s *LinkService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLinkNotFound
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

// AddTag attaches a tag to a link, creating the tag if needed
func (s *LinkService) AddTag(linkID uuid.UUID, name string) (*models.Link, error) {
	if name == "" || len(name) > 50 {
		return nil, apperrors.NewValidationError("tag", "tag name must be 1-50 characters")
	}

	if _, err := s.GetByID(linkID); err != nil {
		return nil, err
	}
	tag, err := s.repo.GetOrCreateTag(name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tag %q: %w", name, err)
	}
	if err := s.repo.AttachTag(linkID, tag.ID); err != nil {
		return nil, fmt.Errorf("failed to attach tag %q: %w", name, err)
	}
	return s.GetByID(linkID)
}

// RemoveTag detaches a tag from a link. The tag row itself stays.
func (s *LinkService) RemoveTag(linkID uuid.UUID, name string) error {
	link, err := s.GetByID(linkID)
	if err != nil {
		return err
	}
	for _, tag := range link.Tags {
		if tag.Name == name {
			if err := s.repo.DetachTag(linkID, tag.ID); err != nil {
				return fmt.Errorf("failed to detach tag %q: %w", name, err)
			}
			return nil
		}
	}
	return apperrors.ErrLinkTagNotFound
}

// CreateCategory validates and creates a link category. A nil team id makes
// the category shared.
func (s *LinkService) CreateCategory(req *CreateCategoryRequest) (*models.LinkCategory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
	}

	category := &models.LinkCategory{
		TeamID: req.TeamID,
		Name:   req.Name,
		Icon:   req.Icon,
	}
	if err := s.repo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// GetCategories retrieves a team's categories plus the shared ones
func (s *LinkService) GetCategories(teamID uuid.UUID) ([]models.LinkCategory, error) {
	categories, err := s.repo.GetCategories(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory removes a category; links in it become uncategorized
func (s *LinkService) DeleteCategory(id uuid.UUID) error {
	if err := s.repo.DeleteCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLinkCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// RecordAccess logs one access of a link
func (s *LinkService) RecordAccess(linkID uuid.UUID, accessedBy string) error {
	if _, err := s.GetByID(linkID); err != nil {
		return err
	}
	if err := s.repo.RecordAccess(linkID, accessedBy); err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}
	return nil
}

// GetPopular returns a team's most accessed links
func (s *LinkService) GetPopular(teamID uuid.UUID, limit int) ([]PopularLink, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	links, counts, err := s.repo.TopByAccess(teamID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get popular links: %w", err)
	}

	popular := make([]PopularLink, 0, len(links))
	for i, link := range links {
		popular = append(popular, PopularLink{Link: link, AccessCount: counts[i]})
	}
	return popular, nil
}

// checkCategory verifies the category exists and is visible to the team
func (s *LinkService) checkCategory(categoryID, teamID uuid.UUID) error {
	category, err := s.repo.GetCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLinkCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}
	if category.TeamID != nil && *category.TeamID != teamID {
		return apperrors.ErrLinkCategoryNotFound
	}
	return nil
}
