package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal backs the older dashboard's goal tracker. The current frontend no
// longer surfaces it, but the endpoints stay up for clients that do.
type Goal struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID      *uuid.UUID `json:"userId,omitempty" gorm:"type:uuid;index"`
	Title       string     `json:"title" gorm:"type:text;not null"`
	Description string     `json:"description" gorm:"type:text"`
	TargetDate  *time.Time `json:"targetDate"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
