package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/logger"
	"ensemble-backend/internal/metrics"
	"ensemble-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Central API ownership role keys mapped onto Application columns
var centralRoleFields = []string{
	"productOwner",
	"deliveryLead",
	"techLead",
	"architectureOwner",
	"serviceOwner",
	"securityChampion",
	"incidentManager",
	"changeManager",
	"capacityOwner",
	"monitoringOwner",
	"backupOwner",
	"drOwner",
	"escalationContact",
}

// ApplicationService handles business logic for applications
type ApplicationService struct {
	repo      repository.ApplicationRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	central   CentralAPIClientInterface
	validator *validator.Validate
}

// NewApplicationService creates a new application service
func NewApplicationService(repo repository.ApplicationRepositoryInterface, teamRepo repository.TeamRepositoryInterface, central CentralAPIClientInterface, validator *validator.Validate) *ApplicationService {
	return &ApplicationService{
		repo:      repo,
		teamRepo:  teamRepo,
		central:   central,
		validator: validator,
	}
}

// CreateApplicationRequest represents the request to create an application
type CreateApplicationRequest struct {
	TeamID      uuid.UUID `json:"team_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	TLA         string    `json:"tla" validate:"required,len=3,alpha"`
	Description string    `json:"description" validate:"max=500"`
}

// UpdateApplicationRequest represents the request to update an application
type UpdateApplicationRequest struct {
	Name        string                    `json:"name" validate:"required,min=2,max=100"`
	TLA         string                    `json:"tla" validate:"required,len=3,alpha"`
	Description string                    `json:"description" validate:"max=500"`
	Status      *models.ApplicationStatus `json:"status,omitempty"`
}

// AddFromCentralAPIRequest represents the request to import an application
// from the Central API by asset id
type AddFromCentralAPIRequest struct {
	TeamID  uuid.UUID `json:"team_id" validate:"required"`
	AssetID string    `json:"asset_id" validate:"required,max=50"`
	TLA     string    `json:"tla" validate:"required,len=3,alpha"`
}

// Create validates and creates an application. The TLA must be unique among
// the team's active applications; the pre-check gives a descriptive error and
// the partial unique index closes the race window.
func (s *ApplicationService) Create(req *CreateApplicationRequest) (*models.Application, error) {
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

	tla := strings.ToUpper(req.TLA)
	exists, err := s.repo.ActiveTLAExists(req.TeamID, tla, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check TLA: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTLAExists
	}

	app := &models.Application{
		TeamID:               req.TeamID,
		Name:                 req.Name,
		TLA:                  tla,
		Description:          req.Description,
		Status:               models.ApplicationStatusActive,
		CentralAPISyncStatus: models.SyncStatusNever,
	}
	if err := s.repo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTLAExists
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return app, nil
}

// GetByID retrieves an application with its sub-applications
func (s *ApplicationService) GetByID(id uuid.UUID) (*models.Application, error) {
	app, err := s.repo.GetWithSubApplications(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// GetByTeam retrieves a team's applications with pagination
func (s *ApplicationService) GetByTeam(teamID uuid.UUID, status *models.ApplicationStatus, page, pageSize int) ([]models.Application, int64, error) {
	if status != nil && !status.IsValid() {
		return nil, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, *status)
	}

	page, pageSize = normalizePage(page, pageSize)
	apps, total, err := s.repo.GetByTeamID(teamID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get applications: %w", err)
	}
	return apps, total, nil
}

// Update validates and updates an application
func (s *ApplicationService) Update(id uuid.UUID, req *UpdateApplicationRequest) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, *req.Status)
	}

	app, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	tla := strings.ToUpper(req.TLA)
	if tla != app.TLA {
		exists, err := s.repo.ActiveTLAExists(app.TeamID, tla, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check TLA: %w", err)
		}
		if exists {
			return nil, apperrors.ErrTLAExists
		}
	}

	app.Name = req.Name
	app.TLA = tla
	app.Description = req.Description
	if req.Status != nil {
		app.Status = *req.Status
	}

	if err := s.repo.Update(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTLAExists
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return app, nil
}

// Delete soft-deletes an application. Application rows are never hard-deleted.
func (s *ApplicationService) Delete(id uuid.UUID) error {
	if err := s.repo.SetStatus(id, models.ApplicationStatusDeleted); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}

// Archive marks an application archived
func (s *ApplicationService) Archive(id uuid.UUID) error {
	if err := s.repo.SetStatus(id, models.ApplicationStatusArchived); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("failed to archive application: %w", err)
	}
	return nil
}

// AddFromCentralAPI imports an application by asset id: fetches the Central
// API record, maps its fields and creates the row with sync status success.
func (s *ApplicationService) AddFromCentralAPI(ctx context.Context, req *AddFromCentralAPIRequest) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":  req.TeamID,
		"asset_id": req.AssetID,
	})
	log.Info("Importing application from Central API")

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

	tla := strings.ToUpper(req.TLA)
	exists, err := s.repo.ActiveTLAExists(req.TeamID, tla, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check TLA: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTLAExists
	}

	central, err := s.central.FetchApplication(ctx, req.AssetID)
	if err != nil {
		metrics.RecordCentralAPISync("failed")
		log.WithError(err).Error("Central API fetch failed")
		return nil, err
	}

	now := time.Now()
	app := &models.Application{
		TeamID:               req.TeamID,
		Name:                 central.Name,
		TLA:                  tla,
		Status:               models.ApplicationStatusActive,
		AssetID:              central.AssetID,
		LifeCycleStatus:      central.LifeCycleStatus,
		Tier:                 central.Tier,
		CentralAPISyncStatus: models.SyncStatusSuccess,
		CentralAPISyncedAt:   &now,
	}
	applyCentralRoles(app, central.Roles)

	if err := s.repo.Create(app); err != nil {
		metrics.RecordCentralAPISync("failed")
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTLAExists
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	metrics.RecordCentralAPISync("success")
	log.Infof("Imported application %q as %s", central.Name, tla)
	return app, nil
}

// SyncFromCentralAPI refreshes an existing application's mirrored fields.
// A failed fetch records sync status failed on the row and returns the error.
func (s *ApplicationService) SyncFromCentralAPI(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	app, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app.AssetID == "" {
		return nil, apperrors.NewValidationError("asset_id", "application has no central api asset id")
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"application_id": id,
		"asset_id":       app.AssetID,
	})
	log.Info("Syncing application from Central API")

	central, err := s.central.FetchApplication(ctx, app.AssetID)
	now := time.Now()
	if err != nil {
		metrics.RecordCentralAPISync("failed")
		log.WithError(err).Error("Central API sync failed")
		app.CentralAPISyncStatus = models.SyncStatusFailed
		app.CentralAPISyncedAt = &now
		if updateErr := s.repo.Update(app); updateErr != nil {
			return nil, fmt.Errorf("failed to record sync failure: %w", updateErr)
		}
		return nil, err
	}

	app.Name = central.Name
	app.LifeCycleStatus = central.LifeCycleStatus
	app.Tier = central.Tier
	app.CentralAPISyncStatus = models.SyncStatusSuccess
	app.CentralAPISyncedAt = &now
	applyCentralRoles(app, central.Roles)

	if err := s.repo.Update(app); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	metrics.RecordCentralAPISync("success")
	return app, nil
}

// applyCentralRoles copies known ownership roles onto the application,
// clearing roles absent from the response
func applyCentralRoles(app *models.Application, roles map[string]CentralRole) {
	targets := map[string]*models.OwnershipRole{
		"productOwner":      &app.ProductOwner,
		"deliveryLead":      &app.DeliveryLead,
		"techLead":          &app.TechLead,
		"architectureOwner": &app.ArchitectureOwner,
		"serviceOwner":      &app.ServiceOwner,
		"securityChampion":  &app.SecurityChampion,
		"incidentManager":   &app.IncidentManager,
		"changeManager":     &app.ChangeManager,
		"capacityOwner":     &app.CapacityOwner,
		"monitoringOwner":   &app.MonitoringOwner,
		"backupOwner":       &app.BackupOwner,
		"drOwner":           &app.DROwner,
		"escalationContact": &app.EscalationContact,
	}
	for _, key := range centralRoleFields {
		target := targets[key]
		role, ok := roles[key]
		if !ok {
			*target = models.OwnershipRole{}
			continue
		}
		*target = models.OwnershipRole{
			Name:  role.Name,
			Email: role.Email,
			Band:  role.Band,
		}
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
