package models

import "time"

// TeamRegistrationRequest represents a pending request to onboard a team.
// Terminal states are approved (which creates a Team row) and rejected.
type TeamRegistrationRequest struct {
	BaseModel
	TeamName      string             `json:"team_name" gorm:"not null;size:100;index" validate:"required,min=2,max=100"`
	Description   string             `json:"description" gorm:"size:500" validate:"max=500"`
	UserGroup     string             `json:"user_group" gorm:"not null;size:100" validate:"required,max=100"`
	AdminGroup    string             `json:"admin_group" gorm:"not null;size:100" validate:"required,max=100"`
	ContactName   string             `json:"contact_name" gorm:"size:100" validate:"max=100"`
	ContactEmail  string             `json:"contact_email" gorm:"size:100" validate:"omitempty,email,max=100"`
	RequestedBy   string             `json:"requested_by" gorm:"size:100"`
	Status        RegistrationStatus `json:"status" gorm:"not null;size:20;default:'pending';index"`
	ReviewedBy    string             `json:"reviewed_by" gorm:"size:100"`
	ReviewedAt    *time.Time         `json:"reviewed_at"`
	ReviewComment string             `json:"review_comment" gorm:"size:500"`
}

// TableName returns the table name for TeamRegistrationRequest
func (TeamRegistrationRequest) TableName() string {
	return "team_registration_requests"
}
