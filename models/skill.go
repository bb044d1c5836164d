package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillCategories is the allowed set of dashboard skill groupings.
var SkillCategories = []string{
	"Languages",
	"Frontend",
	"Backend",
	"AI/ML",
	"DevOps & Tools",
	"Additional Tools",
}

// ValidSkillCategory reports whether category is one of SkillCategories.
func ValidSkillCategory(category string) bool {
	for _, c := range SkillCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Skill names are unique per category, compared case-insensitively. The
// check lives in the handlers, not in a database constraint.
type Skill struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID    *uuid.UUID `json:"userId,omitempty" gorm:"type:uuid;index"`
	Name      string     `json:"name" gorm:"type:text;not null"`
	Category  string     `json:"category" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Public returns a copy safe for unauthenticated responses.
func (s Skill) Public() Skill {
	s.UserID = nil
	return s
}
