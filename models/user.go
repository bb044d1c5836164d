package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the single dashboard owner account. Users are created through
// public registration and never deleted through the API.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
