package models

import (
	"time"

	"github.com/google/uuid"
)

// OwnershipRole holds one ownership contact mirrored from the Central API.
// Embedded repeatedly with per-role column prefixes.
type OwnershipRole struct {
	Name  string `json:"name,omitempty" gorm:"size:100"`
	Email string `json:"email,omitempty" gorm:"size:100"`
	Band  string `json:"band,omitempty" gorm:"size:20"`
}

// Application represents an application owned by a team. The TLA is unique
// among a team's active applications, enforced by a partial unique index.
type Application struct {
	BaseModel
	TeamID      uuid.UUID         `json:"team_id" gorm:"type:uuid;not null;index:idx_applications_team_tla_active,unique,where:status = 'active'" validate:"required"`
	Name        string            `json:"name" gorm:"not null;size:100" validate:"required,min=2,max=100"`
	TLA         string            `json:"tla" gorm:"not null;size:3;index:idx_applications_team_tla_active,unique,where:status = 'active'" validate:"required,len=3,alpha"`
	Description string            `json:"description" gorm:"size:500" validate:"max=500"`
	Status      ApplicationStatus `json:"status" gorm:"not null;size:20;default:'active';index"`

	// Central API mirror fields
	AssetID              string     `json:"asset_id" gorm:"size:50;index"`
	LifeCycleStatus      string     `json:"life_cycle_status" gorm:"size:50"`
	Tier                 string     `json:"tier" gorm:"size:20"`
	CentralAPISyncStatus SyncStatus `json:"central_api_sync_status" gorm:"size:20;default:'never'"`
	CentralAPISyncedAt   *time.Time `json:"central_api_synced_at"`

	// Ownership contacts mirrored from the Central API
	ProductOwner       OwnershipRole `json:"product_owner" gorm:"embedded;embeddedPrefix:product_owner_"`
	DeliveryLead       OwnershipRole `json:"delivery_lead" gorm:"embedded;embeddedPrefix:delivery_lead_"`
	TechLead           OwnershipRole `json:"tech_lead" gorm:"embedded;embeddedPrefix:tech_lead_"`
	ArchitectureOwner  OwnershipRole `json:"architecture_owner" gorm:"embedded;embeddedPrefix:architecture_owner_"`
	ServiceOwner       OwnershipRole `json:"service_owner" gorm:"embedded;embeddedPrefix:service_owner_"`
	SecurityChampion   OwnershipRole `json:"security_champion" gorm:"embedded;embeddedPrefix:security_champion_"`
	IncidentManager    OwnershipRole `json:"incident_manager" gorm:"embedded;embeddedPrefix:incident_manager_"`
	ChangeManager      OwnershipRole `json:"change_manager" gorm:"embedded;embeddedPrefix:change_manager_"`
	CapacityOwner      OwnershipRole `json:"capacity_owner" gorm:"embedded;embeddedPrefix:capacity_owner_"`
	MonitoringOwner    OwnershipRole `json:"monitoring_owner" gorm:"embedded;embeddedPrefix:monitoring_owner_"`
	BackupOwner        OwnershipRole `json:"backup_owner" gorm:"embedded;embeddedPrefix:backup_owner_"`
	DROwner            OwnershipRole `json:"dr_owner" gorm:"embedded;embeddedPrefix:dr_owner_"`
	EscalationContact  OwnershipRole `json:"escalation_contact" gorm:"embedded;embeddedPrefix:escalation_contact_"`

	// Relationships
	SubApplications []SubApplication `json:"sub_applications,omitempty" gorm:"foreignKey:ApplicationID"`
}

// TableName returns the table name for Application
func (Application) TableName() string {
	return "applications"
}

// SubApplication represents a component of an application.
// Names are unique within an application.
type SubApplication struct {
	BaseModel
	ApplicationID uuid.UUID            `json:"application_id" gorm:"type:uuid;not null;uniqueIndex:idx_sub_applications_app_name" validate:"required"`
	Name          string               `json:"name" gorm:"not null;size:100;uniqueIndex:idx_sub_applications_app_name" validate:"required,min=2,max=100"`
	Description   string               `json:"description" gorm:"size:500" validate:"max=500"`
	Status        SubApplicationStatus `json:"status" gorm:"not null;size:20;default:'active';index"`
}

// TableName returns the table name for SubApplication
func (SubApplication) TableName() string {
	return "sub_applications"
}
