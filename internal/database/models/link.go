package models

import (
	"time"

	"github.com/google/uuid"
)

// LinkCategory groups links for display. A nil TeamID means the category is
// shared across teams.
type LinkCategory struct {
	BaseModel
	TeamID *uuid.UUID `json:"team_id" gorm:"type:uuid;index"`
	Name   string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Icon   string     `json:"icon" gorm:"size:50" validate:"max=50"`
}

// TableName returns the table name for LinkCategory
func (LinkCategory) TableName() string {
	return "link_categories"
}

// Link represents a team-scoped bookmark
type Link struct {
	BaseModel
	TeamID      uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	CategoryID  *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	Name        string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	URL         string     `json:"url" gorm:"not null;size:2000" validate:"required,url,max=2000"`
	Description string     `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Tags       []LinkTag       `json:"tags,omitempty" gorm:"many2many:link_tag_assignments"`
	AccessLogs []LinkAccessLog `json:"access_logs,omitempty" gorm:"foreignKey:LinkID"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// LinkTag is a label attachable to any number of links
type LinkTag struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:50;uniqueIndex" validate:"required,max=50"`
}

// TableName returns the table name for LinkTag
func (LinkTag) TableName() string {
	return "link_tags"
}

// LinkAccessLog records one access of a link; append-only
type LinkAccessLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LinkID     uuid.UUID `json:"link_id" gorm:"type:uuid;not null;index"`
	AccessedBy string    `json:"accessed_by" gorm:"size:100"`
	AccessedAt time.Time `json:"accessed_at" gorm:"not null;index"`
}

// TableName returns the table name for LinkAccessLog
func (LinkAccessLog) TableName() string {
	return "link_access_logs"
}
