package api

import (
	"github.com/google/uuid"

	"github.com/dmatos/portfolio-backend/database"
	"github.com/dmatos/portfolio-backend/models"
)

// Store interfaces consumed by the handlers. The database package's repos
// satisfy them; tests substitute fakes.

type userStore interface {
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Add(user *models.User) error
	UpdatePassword(id uuid.UUID, hashed string) error
}

type projectStore interface {
	FindFeatured() ([]*models.Project, error)
	FindByUser(userID uuid.UUID, filter database.ProjectFilter) ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

type skillStore interface {
	FindAll() ([]*models.Skill, error)
	FindByCategory(category string) ([]*models.Skill, error)
	FindDuplicate(name, category string, excludeID *uuid.UUID) (*models.Skill, error)
	FindByID(id uuid.UUID) (*models.Skill, error)
	Add(skill *models.Skill) error
	Update(skill *models.Skill) error
	Delete(id uuid.UUID) error
}

type goalStore interface {
	FindByUser(userID uuid.UUID) ([]*models.Goal, error)
	FindByID(id uuid.UUID) (*models.Goal, error)
	Add(goal *models.Goal) error
	Update(goal *models.Goal) error
	Delete(id uuid.UUID) error
}
