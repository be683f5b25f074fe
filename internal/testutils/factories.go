package testutils

import (
	"encoding/json"
	"time"

	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "payments-" + id.String()[:8],
		Description:  "A test team",
		UserGroup:    "payments-users",
		AdminGroup:   "payments-admins",
		ContactName:  "Dana Szabo",
		ContactEmail: "dana.szabo@example.com",
		IsActive:     true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// Inactive creates a deactivated team
func (f *TeamFactory) Inactive() *models.Team {
	team := f.Create()
	team.IsActive = false
	return team
}

// RegistrationFactory provides methods to create test TeamRegistrationRequest data
type RegistrationFactory struct{}

// NewRegistrationFactory creates a new RegistrationFactory
func NewRegistrationFactory() *RegistrationFactory {
	return &RegistrationFactory{}
}

// Create creates a pending registration request with default values
func (f *RegistrationFactory) Create() *models.TeamRegistrationRequest {
	id := uuid.New()
	return &models.TeamRegistrationRequest{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamName:     "checkout-" + id.String()[:8],
		Description:  "Checkout squad",
		UserGroup:    "checkout-users",
		AdminGroup:   "checkout-admins",
		ContactName:  "Priya Nair",
		ContactEmail: "priya.nair@example.com",
		RequestedBy:  "priya.nair@example.com",
		Status:       models.RegistrationStatusPending,
	}
}

// WithTeamName sets the requested team name
func (f *RegistrationFactory) WithTeamName(name string) *models.TeamRegistrationRequest {
	req := f.Create()
	req.TeamName = name
	return req
}

// WithStatus sets the registration status
func (f *RegistrationFactory) WithStatus(status models.RegistrationStatus) *models.TeamRegistrationRequest {
	req := f.Create()
	req.Status = status
	return req
}

// ApplicationFactory provides methods to create test Application data
type ApplicationFactory struct{}

// NewApplicationFactory creates a new ApplicationFactory
func NewApplicationFactory() *ApplicationFactory {
	return &ApplicationFactory{}
}

// Create creates a test Application with default values
func (f *ApplicationFactory) Create(teamID uuid.UUID) *models.Application {
	return &models.Application{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:               teamID,
		Name:                 "Payment Gateway",
		TLA:                  "PGW",
		Description:          "A test application",
		Status:               models.ApplicationStatusActive,
		CentralAPISyncStatus: models.SyncStatusNever,
	}
}

// WithTLA sets a custom TLA
func (f *ApplicationFactory) WithTLA(teamID uuid.UUID, tla string) *models.Application {
	app := f.Create(teamID)
	app.TLA = tla
	return app
}

// WithAssetID links the application to a Central API asset
func (f *ApplicationFactory) WithAssetID(teamID uuid.UUID, assetID string) *models.Application {
	app := f.Create(teamID)
	app.AssetID = assetID
	return app
}

// SubApplicationFactory provides methods to create test SubApplication data
type SubApplicationFactory struct{}

// NewSubApplicationFactory creates a new SubApplicationFactory
func NewSubApplicationFactory() *SubApplicationFactory {
	return &SubApplicationFactory{}
}

// Create creates a test SubApplication with default values
func (f *SubApplicationFactory) Create(applicationID uuid.UUID) *models.SubApplication {
	id := uuid.New()
	return &models.SubApplication{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ApplicationID: applicationID,
		Name:          "worker-" + id.String()[:8],
		Description:   "A test sub-application",
		Status:        models.SubApplicationStatusActive,
	}
}

// TurnoverFactory provides methods to create test Turnover data
type TurnoverFactory struct{}

// NewTurnoverFactory creates a new TurnoverFactory
func NewTurnoverFactory() *TurnoverFactory {
	return &TurnoverFactory{}
}

// Create creates an active team-scope turnover with default values
func (f *TurnoverFactory) Create(teamID uuid.UUID) *models.Turnover {
	return &models.Turnover{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:       teamID,
		HandoverFrom: "alice@example.com",
		HandoverTo:   "bob@example.com",
		Status:       models.TurnoverStatusActive,
		TurnoverDate: time.Now(),
		Summary:      "Quiet shift, one open incident",
	}
}

// WithApplication scopes the turnover to an application
func (f *TurnoverFactory) WithApplication(teamID, applicationID uuid.UUID) *models.Turnover {
	t := f.Create(teamID)
	t.ApplicationID = &applicationID
	return t
}

// Completed creates a completed turnover
func (f *TurnoverFactory) Completed(teamID uuid.UUID) *models.Turnover {
	t := f.Create(teamID)
	t.Status = models.TurnoverStatusCompleted
	return t
}

// EntryFactory provides methods to create test TurnoverEntry data
type EntryFactory struct{}

// NewEntryFactory creates a new EntryFactory
func NewEntryFactory() *EntryFactory {
	return &EntryFactory{}
}

// Create creates a normal-priority incident entry with default values
func (f *EntryFactory) Create(turnoverID uuid.UUID) *models.TurnoverEntry {
	return &models.TurnoverEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TurnoverID:  turnoverID,
		EntryType:   models.EntryTypeINC,
		Priority:    models.EntryPriorityNormal,
		Title:       "Latency spike on checkout",
		Description: "p99 above threshold since 14:00",
		ReferenceID: "INC0012345",
		EntryStatus: "in_progress",
	}
}

// Flagged creates an entry already flagged at the given priority
func (f *EntryFactory) Flagged(turnoverID uuid.UUID, priority models.EntryPriority) *models.TurnoverEntry {
	e := f.Create(turnoverID)
	e.Priority = priority
	e.FlaggedBy = "carol@example.com"
	now := time.Now()
	e.FlaggedAt = &now
	return e
}

// WithType sets the entry type
func (f *EntryFactory) WithType(turnoverID uuid.UUID, entryType models.EntryType) *models.TurnoverEntry {
	e := f.Create(turnoverID)
	e.EntryType = entryType
	return e
}

// DraftFactory provides methods to create test TurnoverDraft data
type DraftFactory struct{}

// NewDraftFactory creates a new DraftFactory
func NewDraftFactory() *DraftFactory {
	return &DraftFactory{}
}

// Create creates a team-scope draft with one entry
func (f *DraftFactory) Create(teamID uuid.UUID) *models.TurnoverDraft {
	entries, _ := json.Marshal([]models.DraftEntry{
		{
			EntryType: models.EntryTypeRFC,
			Title:     "Deploy config change",
		},
	})
	return &models.TurnoverDraft{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:       teamID,
		Status:       models.TurnoverStatusDraft,
		HandoverFrom: "alice@example.com",
		HandoverTo:   "bob@example.com",
		Entries:      entries,
	}
}

// WithApplication scopes the draft to an application
func (f *DraftFactory) WithApplication(teamID, applicationID uuid.UUID) *models.TurnoverDraft {
	d := f.Create(teamID)
	d.ApplicationID = &applicationID
	return d
}

// LinkFactory provides methods to create test Link data
type LinkFactory struct{}

// NewLinkFactory creates a new LinkFactory
func NewLinkFactory() *LinkFactory {
	return &LinkFactory{}
}

// Create creates a test Link with default values
func (f *LinkFactory) Create(teamID uuid.UUID) *models.Link {
	id := uuid.New()
	return &models.Link{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      teamID,
		Name:        "Runbook " + id.String()[:8],
		URL:         "https://wiki.example.com/runbooks/" + id.String()[:8],
		Description: "A test link",
	}
}

// WithCategory assigns the link to a category
func (f *LinkFactory) WithCategory(teamID, categoryID uuid.UUID) *models.Link {
	link := f.Create(teamID)
	link.CategoryID = &categoryID
	return link
}

// CategoryFactory provides methods to create test LinkCategory data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a team-scoped category
func (f *CategoryFactory) Create(teamID uuid.UUID) *models.LinkCategory {
	return &models.LinkCategory{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: &teamID,
		Name:   "Monitoring",
		Icon:   "chart",
	}
}

// Shared creates a category visible to all teams
func (f *CategoryFactory) Shared() *models.LinkCategory {
	return &models.LinkCategory{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Company",
		Icon: "building",
	}
}

// SchemaFactory provides methods to create test ToolSettingsSchema data
type SchemaFactory struct{}

// NewSchemaFactory creates a new SchemaFactory
func NewSchemaFactory() *SchemaFactory {
	return &SchemaFactory{}
}

// Create creates a tool settings template with default values
func (f *SchemaFactory) Create(toolName string) *models.ToolSettingsSchema {
	settings, _ := json.Marshal(map[string]interface{}{
		"enabled":   true,
		"page_size": 20,
	})
	return &models.ToolSettingsSchema{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ToolName:    toolName,
		Description: "Settings for " + toolName,
		Settings:    settings,
		Version:     1,
	}
}
