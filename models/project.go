package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProjectStatus enumerates the lifecycle stages shown on the dashboard.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
	StatusOnHold     ProjectStatus = "On Hold"
)

// Project represents a portfolio project. UserID is the owning account; it
// is nullable and omitted from JSON when cleared, so public responses never
// carry ownership.
type Project struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID       *uuid.UUID     `json:"userId,omitempty" gorm:"type:uuid;index"`
	Title        string         `json:"title" gorm:"type:text;not null"`
	Description  string         `json:"description" gorm:"type:text;not null"`
	Technologies pq.StringArray `json:"technologies" gorm:"type:text[]"`
	GithubLink   string         `json:"githubLink" gorm:"type:text"`
	DemoLink     string         `json:"demoLink" gorm:"type:text"`
	Status       ProjectStatus  `json:"status" gorm:"type:text;not null;default:'Planning'"`
	Featured     bool           `json:"featured" gorm:"not null;default:false"`
	StartDate    time.Time      `json:"startDate" gorm:"not null"`
	EndDate      *time.Time     `json:"endDate"` // nil = ongoing
	Body         string         `json:"body" gorm:"type:text"`
	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`
	TeamSize     int            `json:"teamSize" gorm:"default:1"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Public returns a copy safe for unauthenticated responses.
func (p Project) Public() Project {
	p.UserID = nil
	return p
}
