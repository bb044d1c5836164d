package database

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmatos/portfolio-backend/models"
)

// ProjectFilter carries the dashboard's list query parameters. Zero values
// mean "no filtering" for that dimension.
type ProjectFilter struct {
	Search       string
	Status       string
	Technologies []string
	StartYear    int
	EndYear      int
	SortBy       string
	SortOrder    string
}

// sortColumns is the allow-list of sortable fields. Anything outside it
// falls back to defaultProjectOrder.
var sortColumns = map[string]string{
	"title":     "title",
	"startDate": "start_date",
	"endDate":   "end_date",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"status":    "status",
}

const defaultProjectOrder = "start_date DESC"

func orderClause(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		return defaultProjectOrder
	}
	switch sortOrder {
	case "asc":
		return column + " ASC"
	case "desc", "":
		return column + " DESC"
	default:
		return defaultProjectOrder
	}
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindFeatured returns every project flagged for the public landing page,
// most recently started first.
func (r *ProjectRepo) FindFeatured() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("featured = ?", true).Order(defaultProjectOrder).Find(&projects).Error
	return projects, err
}

// FindByUser returns the projects owned by userID, narrowed and ordered by
// filter.
func (r *ProjectRepo) FindByUser(userID uuid.UUID, filter ProjectFilter) ([]*models.Project, error) {
	q := r.db.Where("user_id = ?", userID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(
			"(title ILIKE ? OR description ILIKE ? OR EXISTS (SELECT 1 FROM unnest(technologies) AS tech WHERE tech ILIKE ?))",
			pattern, pattern, pattern,
		)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	// Any listed technology matches, each compared case-insensitively.
	if len(filter.Technologies) > 0 {
		conds := make([]string, len(filter.Technologies))
		args := make([]interface{}, len(filter.Technologies))
		for i, tech := range filter.Technologies {
			conds[i] = "EXISTS (SELECT 1 FROM unnest(technologies) AS tech WHERE LOWER(tech) = LOWER(?))"
			args[i] = tech
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	// Calendar-year window over the start date: inclusive lower bound,
	// exclusive upper bound at year resolution.
	if filter.StartYear > 0 {
		q = q.Where("start_date >= ?", time.Date(filter.StartYear, 1, 1, 0, 0, 0, 0, time.UTC))
	}
	if filter.EndYear > 0 {
		q = q.Where("start_date < ?", time.Date(filter.EndYear+1, 1, 1, 0, 0, 0, 0, time.UTC))
	}

	var projects []*models.Project
	err := q.Order(orderClause(filter.SortBy, filter.SortOrder)).Find(&projects).Error
	return projects, err
}

// FindByID returns the project or (nil, nil) when no row matches.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update persists the full project row.
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
