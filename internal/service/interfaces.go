package service

import (
	"context"
	"time"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CentralAPIClientInterface defines the interface for the Central API client
type CentralAPIClientInterface interface {
	FetchApplication(ctx context.Context, assetID string) (*CentralApplication, error)
}

// TeamServiceInterface defines the interface for team service operations
type TeamServiceInterface interface {
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	List(activeOnly bool, page, pageSize int) ([]models.Team, int64, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error)
	Deactivate(id uuid.UUID) error
	Reactivate(id uuid.UUID) error
}

// RegistrationServiceInterface defines the interface for registration service operations
type RegistrationServiceInterface interface {
	Submit(req *SubmitRegistrationRequest) (*models.TeamRegistrationRequest, error)
	GetByID(id uuid.UUID) (*models.TeamRegistrationRequest, error)
	List(status *models.RegistrationStatus, page, pageSize int) ([]models.TeamRegistrationRequest, int64, error)
	Approve(id uuid.UUID, req *ReviewRequest) (*models.Team, error)
	Reject(id uuid.UUID, req *ReviewRequest) error
	CountByStatus() (map[models.RegistrationStatus]int64, error)
}

// ApplicationServiceInterface defines the interface for application service operations
type ApplicationServiceInterface interface {
	Create(req *CreateApplicationRequest) (*models.Application, error)
	GetByID(id uuid.UUID) (*models.Application, error)
	GetByTeam(teamID uuid.UUID, status *models.ApplicationStatus, page, pageSize int) ([]models.Application, int64, error)
	Update(id uuid.UUID, req *UpdateApplicationRequest) (*models.Application, error)
	Delete(id uuid.UUID) error
	Archive(id uuid.UUID) error
	AddFromCentralAPI(ctx context.Context, req *AddFromCentralAPIRequest) (*models.Application, error)
	SyncFromCentralAPI(ctx context.Context, id uuid.UUID) (*models.Application, error)
}

// SubApplicationServiceInterface defines the interface for sub-application service operations
type SubApplicationServiceInterface interface {
	Create(req *CreateSubApplicationRequest) (*models.SubApplication, error)
	GetByID(id uuid.UUID) (*models.SubApplication, error)
	GetByApplication(applicationID uuid.UUID) ([]models.SubApplication, error)
	Update(id uuid.UUID, req *UpdateSubApplicationRequest) (*models.SubApplication, error)
	Delete(id uuid.UUID) error
}

// TurnoverServiceInterface defines the interface for turnover service operations
type TurnoverServiceInterface interface {
	Create(req *CreateTurnoverRequest) (*models.Turnover, error)
	GetByID(id uuid.UUID) (*models.Turnover, error)
	List(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, status *models.TurnoverStatus, page, pageSize int) ([]models.Turnover, int64, error)
	Complete(id uuid.UUID) (*models.Turnover, error)
	Archive(id uuid.UUID) error
	AddEntry(turnoverID uuid.UUID, req *CreateEntryRequest) (*models.TurnoverEntry, error)
	GetEntry(id uuid.UUID) (*models.TurnoverEntry, error)
	UpdateEntry(id uuid.UUID, req *UpdateEntryRequest) (*models.TurnoverEntry, error)
	DeleteEntry(id uuid.UUID) error
}

// DraftServiceInterface defines the interface for draft service operations
type DraftServiceInterface interface {
	SaveDraft(req *SaveDraftRequest) (*SaveDraftResponse, error)
	AutoSaveDraft(req *SaveDraftRequest) (*SaveDraftResponse, error)
	GetDraft(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID) (*DraftResponse, error)
	ListDrafts(teamID uuid.UUID) ([]DraftResponse, error)
	DeleteDraft(id uuid.UUID) error
	GetPrefillData(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, handoverFrom, handoverTo string) (*PrefillResponse, error)
}

// FlaggingServiceInterface defines the interface for flagging service operations
type FlaggingServiceInterface interface {
	FlagEntry(req *FlagEntryRequest) error
	UnflagEntry(entryID uuid.UUID) error
	BulkFlagEntries(req *BulkFlagRequest) (*BulkFlagResponse, error)
	GetFlaggedEntries(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, priority *models.EntryPriority) ([]models.TurnoverEntry, error)
	GetFlaggedCounts(teamID uuid.UUID) (*FlaggedCountsResponse, error)
}

// SnapshotServiceInterface defines the interface for snapshot service operations
type SnapshotServiceInterface interface {
	Create(req *CreateSnapshotRequest) (*models.TurnoverSnapshot, error)
	GetByID(id uuid.UUID) (*models.TurnoverSnapshot, error)
	GetByDate(scope repository.TurnoverScope, date time.Time) (*models.TurnoverSnapshot, error)
	ListByTeam(teamID uuid.UUID, from, to *time.Time, page, pageSize int) ([]models.TurnoverSnapshot, int64, error)
}

// LinkServiceInterface defines the interface for link service operations
type LinkServiceInterface interface {
	Create(req *CreateLinkRequest) (*models.Link, error)
	GetByID(id uuid.UUID) (*models.Link, error)
	GetByTeam(teamID uuid.UUID, categoryID *uuid.UUID, tag string) ([]models.Link, error)
	Update(id uuid.UUID, req *UpdateLinkRequest) (*models.Link, error)
	Delete(id uuid.UUID) error
	AddTag(linkID uuid.UUID, name string) (*models.Link, error)
	RemoveTag(linkID uuid.UUID, name string) error
	CreateCategory(req *CreateCategoryRequest) (*models.LinkCategory, error)
	GetCategories(teamID uuid.UUID) ([]models.LinkCategory, error)
	DeleteCategory(id uuid.UUID) error
	RecordAccess(linkID uuid.UUID, accessedBy string) error
	GetPopular(teamID uuid.UUID, limit int) ([]PopularLink, error)
}

// ToolSettingsServiceInterface defines the interface for tool settings service operations
type ToolSettingsServiceInterface interface {
	ListTools() ([]models.ToolSettingsSchema, error)
	GetEffective(teamID uuid.UUID, toolName string) (*EffectiveSettingsResponse, error)
	UpdateGlobal(toolName string, req *UpdateSettingsRequest) (*models.GlobalToolSettings, error)
	UpdateTeam(teamID uuid.UUID, toolName string, req *UpdateSettingsRequest) (*models.TeamToolSettings, error)
	SeedFromFile(path string) (int, error)
}

// AdminServiceInterface defines the interface for admin service operations
type AdminServiceInterface interface {
	GetDashboardCounts() (*DashboardCounts, error)
}
