package models

// Team represents an onboarded team in the portal.
// Teams are only created through registration approval, never directly.
type Team struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,min=2,max=100"`
	Description  string `json:"description" gorm:"size:500" validate:"max=500"`
	UserGroup    string `json:"user_group" gorm:"not null;size:100" validate:"required,max=100"`
	AdminGroup   string `json:"admin_group" gorm:"not null;size:100" validate:"required,max=100"`
	ContactName  string `json:"contact_name" gorm:"size:100" validate:"max=100"`
	ContactEmail string `json:"contact_email" gorm:"size:100" validate:"omitempty,email,max=100"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:TeamID"`
	Links        []Link        `json:"links,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
