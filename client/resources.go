package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmatos/portfolio-backend/models"
)

// ProjectQuery mirrors the dashboard's list filter controls.
type ProjectQuery struct {
	Search       string
	Status       string
	Technologies []string
	StartYear    int
	EndYear      int
	SortBy       string
	SortOrder    string
}

func (q ProjectQuery) encode() string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if len(q.Technologies) > 0 {
		values.Set("technologies", strings.Join(q.Technologies, ","))
	}
	if q.StartYear > 0 {
		values.Set("startDate", strconv.Itoa(q.StartYear))
	}
	if q.EndYear > 0 {
		values.Set("endDate", strconv.Itoa(q.EndYear))
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
		values.Set("sortOrder", q.SortOrder)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// FeaturedProjects fetches the public landing-page listing.
func (c *Client) FeaturedProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := c.do(ctx, http.MethodGet, "/api/projects/featured", nil, &projects, false)
	return projects, err
}

// Projects fetches the authenticated user's projects.
func (c *Client) Projects(ctx context.Context, query ProjectQuery) ([]models.Project, error) {
	var projects []models.Project
	err := c.do(ctx, http.MethodGet, "/api/projects"+query.encode(), nil, &projects, true)
	return projects, err
}

func (c *Client) CreateProject(ctx context.Context, project map[string]any) (*models.Project, error) {
	var created models.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", project, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProject(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Project, error) {
	var updated models.Project
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id.String(), fields, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject removes the project and returns the server-confirmed id.
func (c *Client) DeleteProject(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var body struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/projects/"+id.String(), nil, &body, true); err != nil {
		return uuid.Nil, err
	}
	return body.ID, nil
}

// Skills fetches the public skill listing.
func (c *Client) Skills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.do(ctx, http.MethodGet, "/api/skills", nil, &skills, false)
	return skills, err
}

// SkillsByCategory fetches one category of the public skill listing.
func (c *Client) SkillsByCategory(ctx context.Context, category string) ([]models.Skill, error) {
	var skills []models.Skill
	path := "/api/skills/category/" + url.PathEscape(category)
	err := c.do(ctx, http.MethodGet, path, nil, &skills, false)
	return skills, err
}

func (c *Client) CreateSkill(ctx context.Context, name, category string) (*models.Skill, error) {
	var created models.Skill
	body := map[string]string{"name": name, "category": category}
	if err := c.do(ctx, http.MethodPost, "/api/skills", body, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id uuid.UUID, name, category string) (*models.Skill, error) {
	var updated models.Skill
	body := map[string]string{"name": name, "category": category}
	if err := c.do(ctx, http.MethodPut, "/api/skills/"+id.String(), body, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var body struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/skills/"+id.String(), nil, &body, true); err != nil {
		return uuid.Nil, err
	}
	return body.ID, nil
}

// Goals fetches the authenticated user's goals (legacy dashboard).
func (c *Client) Goals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	err := c.do(ctx, http.MethodGet, "/api/goals", nil, &goals, true)
	return goals, err
}

func (c *Client) CreateGoal(ctx context.Context, goal map[string]any) (*models.Goal, error) {
	var created models.Goal
	if err := c.do(ctx, http.MethodPost, "/api/goals", goal, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateGoal(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Goal, error) {
	var updated models.Goal
	if err := c.do(ctx, http.MethodPut, "/api/goals/"+id.String(), fields, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var body struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/goals/"+id.String(), nil, &body, true); err != nil {
		return uuid.Nil, err
	}
	return body.ID, nil
}
