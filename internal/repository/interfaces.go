package repository

import (
	"time"

	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(activeOnly bool, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	SetActive(id uuid.UUID, active bool) error
	NameExists(name string) (bool, error)
	Count() (int64, error)
}

// RegistrationRepositoryInterface defines the interface for registration repository operations
type RegistrationRepositoryInterface interface {
	Create(req *models.TeamRegistrationRequest) error
	GetByID(id uuid.UUID) (*models.TeamRegistrationRequest, error)
	List(status *models.RegistrationStatus, limit, offset int) ([]models.TeamRegistrationRequest, int64, error)
	PendingExistsForName(teamName string) (bool, error)
	Approve(id uuid.UUID, reviewer, comment string) (*models.Team, error)
	Reject(id uuid.UUID, reviewer, comment string) error
	CountByStatus() (map[models.RegistrationStatus]int64, error)
}

// ApplicationRepositoryInterface defines the interface for application repository operations
type ApplicationRepositoryInterface interface {
	Create(app *models.Application) error
	GetByID(id uuid.UUID) (*models.Application, error)
	GetWithSubApplications(id uuid.UUID) (*models.Application, error)
	GetByTeamID(teamID uuid.UUID, status *models.ApplicationStatus, limit, offset int) ([]models.Application, int64, error)
	Update(app *models.Application) error
	SetStatus(id uuid.UUID, status models.ApplicationStatus) error
	ActiveTLAExists(teamID uuid.UUID, tla string, excludeID *uuid.UUID) (bool, error)
	Count() (int64, error)
}

// SubApplicationRepositoryInterface defines the interface for sub-application repository operations
type SubApplicationRepositoryInterface interface {
	Create(sub *models.SubApplication) error
	GetByID(id uuid.UUID) (*models.SubApplication, error)
	GetByApplicationID(applicationID uuid.UUID) ([]models.SubApplication, error)
	NameExists(applicationID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	Update(sub *models.SubApplication) error
	Delete(id uuid.UUID) error
}

// TurnoverRepositoryInterface defines the interface for turnover repository operations
type TurnoverRepositoryInterface interface {
	Create(turnover *models.Turnover) error
	GetByID(id uuid.UUID) (*models.Turnover, error)
	List(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, status *models.TurnoverStatus, limit, offset int) ([]models.Turnover, int64, error)
	GetLatestCompleted(scope TurnoverScope) (*models.Turnover, error)
	SetStatus(id uuid.UUID, status models.TurnoverStatus) error
	Complete(id uuid.UUID, scope TurnoverScope) error
}

// TurnoverEntryRepositoryInterface defines the interface for turnover entry repository operations
type TurnoverEntryRepositoryInterface interface {
	Create(entry *models.TurnoverEntry) error
	GetByID(id uuid.UUID) (*models.TurnoverEntry, error)
	GetByTurnoverID(turnoverID uuid.UUID) ([]models.TurnoverEntry, error)
	Update(entry *models.TurnoverEntry) error
	Delete(id uuid.UUID) error
	SetPriority(id uuid.UUID, priority models.EntryPriority, comment, flaggedBy string) error
	BulkSetPriority(ids []uuid.UUID, priority models.EntryPriority, comment, flaggedBy string) (int64, error)
	GetFlagged(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, priority *models.EntryPriority) ([]models.TurnoverEntry, error)
	CountByPriority(teamID uuid.UUID) (map[models.EntryPriority]int64, error)
	CountByType(teamID uuid.UUID) (map[models.EntryType]int64, error)
	CountFlagged() (int64, error)
}

// DraftRepositoryInterface defines the interface for draft repository operations
type DraftRepositoryInterface interface {
	Upsert(draft *models.TurnoverDraft) error
	GetByScope(scope TurnoverScope) (*models.TurnoverDraft, error)
	GetByID(id uuid.UUID) (*models.TurnoverDraft, error)
	ListByTeam(teamID uuid.UUID) ([]models.TurnoverDraft, error)
	Delete(id uuid.UUID) error
}

// SnapshotRepositoryInterface defines the interface for snapshot repository operations
type SnapshotRepositoryInterface interface {
	Create(snapshot *models.TurnoverSnapshot) error
	GetByID(id uuid.UUID) (*models.TurnoverSnapshot, error)
	GetByScopeAndDate(scope TurnoverScope, date time.Time) (*models.TurnoverSnapshot, error)
	ListByTeam(teamID uuid.UUID, from, to *time.Time, limit, offset int) ([]models.TurnoverSnapshot, int64, error)
}

// LinkRepositoryInterface defines the interface for link repository operations
type LinkRepositoryInterface interface {
	Create(link *models.Link) error
	GetByID(id uuid.UUID) (*models.Link, error)
	GetByTeamID(teamID uuid.UUID, categoryID *uuid.UUID, tag string) ([]models.Link, error)
	Update(link *models.Link) error
	Delete(id uuid.UUID) error
	GetOrCreateTag(name string) (*models.LinkTag, error)
	AttachTag(linkID, tagID uuid.UUID) error
	DetachTag(linkID, tagID uuid.UUID) error
	CreateCategory(category *models.LinkCategory) error
	GetCategoryByID(id uuid.UUID) (*models.LinkCategory, error)
	GetCategories(teamID uuid.UUID) ([]models.LinkCategory, error)
	DeleteCategory(id uuid.UUID) error
	RecordAccess(linkID uuid.UUID, accessedBy string) error
	TopByAccess(teamID uuid.UUID, limit int) ([]models.Link, []int64, error)
}

// ToolSettingsRepositoryInterface defines the interface for tool settings repository operations
type ToolSettingsRepositoryInterface interface {
	GetSchema(toolName string) (*models.ToolSettingsSchema, error)
	ListSchemas() ([]models.ToolSettingsSchema, error)
	CountSchemas() (int64, error)
	UpsertSchema(schema *models.ToolSettingsSchema) error
	GetGlobal(toolName string) (*models.GlobalToolSettings, error)
	UpsertGlobal(settings *models.GlobalToolSettings) error
	GetTeam(teamID uuid.UUID, toolName string) (*models.TeamToolSettings, error)
	UpsertTeam(settings *models.TeamToolSettings) error
}
