package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmatos/portfolio-backend/database"
	"github.com/dmatos/portfolio-backend/models"
)

// The fakes mirror the repos' contract: lookups return copies (a row read
// twice is two values, like the database) and misses are (nil, nil).

type fakeUserStore struct {
	users  []models.User
	addErr error
}

func (f *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Add(user *models.User) error {
	if f.addErr != nil {
		return f.addErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) UpdatePassword(id uuid.UUID, hashed string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Password = hashed
			return nil
		}
	}
	return nil
}

type fakeProjectStore struct {
	projects   []models.Project
	lastFilter database.ProjectFilter
}

func (f *fakeProjectStore) FindFeatured() ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range f.projects {
		if p.Featured {
			copied := p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) FindByUser(userID uuid.UUID, filter database.ProjectFilter) ([]*models.Project, error) {
	f.lastFilter = filter
	var out []*models.Project
	for _, p := range f.projects {
		if p.UserID != nil && *p.UserID == userID {
			copied := p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	f.projects = append(f.projects, *project)
	return nil
}

func (f *fakeProjectStore) Update(project *models.Project) error {
	for i := range f.projects {
		if f.projects[i].ID == project.ID {
			f.projects[i] = *project
			return nil
		}
	}
	return nil
}

func (f *fakeProjectStore) Delete(id uuid.UUID) error {
	kept := f.projects[:0]
	for _, p := range f.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.projects = kept
	return nil
}

type fakeSkillStore struct {
	skills []models.Skill
}

func (f *fakeSkillStore) FindAll() ([]*models.Skill, error) {
	var out []*models.Skill
	for _, s := range f.skills {
		copied := s
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeSkillStore) FindByCategory(category string) ([]*models.Skill, error) {
	var out []*models.Skill
	for _, s := range f.skills {
		if s.Category == category {
			copied := s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeSkillStore) FindDuplicate(name, category string, excludeID *uuid.UUID) (*models.Skill, error) {
	for _, s := range f.skills {
		if excludeID != nil && s.ID == *excludeID {
			continue
		}
		if strings.EqualFold(s.Name, name) && s.Category == category {
			copied := s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	for _, s := range f.skills {
		if s.ID == id {
			copied := s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSkillStore) Add(skill *models.Skill) error {
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	f.skills = append(f.skills, *skill)
	return nil
}

func (f *fakeSkillStore) Update(skill *models.Skill) error {
	for i := range f.skills {
		if f.skills[i].ID == skill.ID {
			f.skills[i] = *skill
			return nil
		}
	}
	return nil
}

func (f *fakeSkillStore) Delete(id uuid.UUID) error {
	kept := f.skills[:0]
	for _, s := range f.skills {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	f.skills = kept
	return nil
}

type fakeGoalStore struct {
	goals []models.Goal
}

func (f *fakeGoalStore) FindByUser(userID uuid.UUID) ([]*models.Goal, error) {
	var out []*models.Goal
	for _, g := range f.goals {
		if g.UserID != nil && *g.UserID == userID {
			copied := g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeGoalStore) FindByID(id uuid.UUID) (*models.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			copied := g
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeGoalStore) Add(goal *models.Goal) error {
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	f.goals = append(f.goals, *goal)
	return nil
}

func (f *fakeGoalStore) Update(goal *models.Goal) error {
	for i := range f.goals {
		if f.goals[i].ID == goal.ID {
			f.goals[i] = *goal
			return nil
		}
	}
	return nil
}

func (f *fakeGoalStore) Delete(id uuid.UUID) error {
	kept := f.goals[:0]
	for _, g := range f.goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	f.goals = kept
	return nil
}

// authedRouter mounts routes with the given user pre-resolved into the
// request context, standing in for the auth middleware.
func authedRouter(user *models.User, register func(chi.Router)) *chi.Mux {
	r := chi.NewRouter()
	if user != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(ctxWithUser(req.Context(), user)))
			})
		})
	}
	register(r)
	return r
}
