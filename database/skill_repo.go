package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmatos/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns every skill ordered for display: category first, then
// name.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("category ASC, name ASC").Find(&skills).Error
	return skills, err
}

// FindByCategory returns the skills of one category ordered by name.
func (r *SkillRepo) FindByCategory(category string) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Where("category = ?", category).Order("name ASC").Find(&skills).Error
	return skills, err
}

// FindDuplicate probes for a skill with the same name (case-insensitive)
// in the same category, skipping excludeID when it is non-nil so updates
// don't collide with themselves. Returns (nil, nil) when the pair is free.
func (r *SkillRepo) FindDuplicate(name, category string, excludeID *uuid.UUID) (*models.Skill, error) {
	q := r.db.Where("LOWER(name) = LOWER(?) AND category = ?", name, category)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var skill models.Skill
	err := q.First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindByID returns the skill or (nil, nil) when no row matches.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database.
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update persists the full skill row.
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id.
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}
