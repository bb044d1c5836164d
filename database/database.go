package database

import (
	"gorm.io/gorm"

	"github.com/dmatos/portfolio-backend/models"
)

// Database aggregates the per-model repositories over one shared GORM
// connection.
type Database struct {
	userRepo    *UserRepo
	projectRepo *ProjectRepo
	skillRepo   *SkillRepo
	goalRepo    *GoalRepo
}

func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		projectRepo: NewProjectRepo(db),
		skillRepo:   NewSkillRepo(db),
		goalRepo:    NewGoalRepo(db),
	}
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) GoalRepo() *GoalRepo {
	return d.goalRepo
}

// AutoMigrate creates or updates the schema for every model. Skill
// uniqueness is intentionally not a constraint here; the duplicate check
// happens before writes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Skill{},
		&models.Goal{},
	)
}
