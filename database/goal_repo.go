package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmatos/portfolio-backend/models"
)

// GoalRepo serves the legacy goal dashboard.
type GoalRepo struct {
	db *gorm.DB
}

func NewGoalRepo(db *gorm.DB) *GoalRepo {
	return &GoalRepo{db}
}

// FindByUser returns the goals owned by userID, newest first.
func (r *GoalRepo) FindByUser(userID uuid.UUID) ([]*models.Goal, error) {
	var goals []*models.Goal
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error
	return goals, err
}

// FindByID returns the goal or (nil, nil) when no row matches.
func (r *GoalRepo) FindByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepo) Add(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

func (r *GoalRepo) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

func (r *GoalRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Goal{}, "id = ?", id).Error
}
