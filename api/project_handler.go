package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dmatos/portfolio-backend/database"
	"github.com/dmatos/portfolio-backend/errs"
	"github.com/dmatos/portfolio-backend/models"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectStore
}

func newProjectHandler(projects projectStore, production bool) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		projects:  projects,
	}
}

// projectRequest is the create/update payload. Pointer fields distinguish
// "not provided" from zero values so updates only replace what the client
// sent.
type projectRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	GithubLink   *string  `json:"githubLink"`
	DemoLink     *string  `json:"demoLink"`
	Status       *string  `json:"status"`
	Featured     *bool    `json:"featured"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Body         *string  `json:"body"`
	Tags         []string `json:"tags"`
	TeamSize     *int     `json:"teamSize"`
}

// parseDate accepts the dashboard's date-only format as well as full
// timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func validStatus(s string) bool {
	switch models.ProjectStatus(s) {
	case models.StatusPlanning, models.StatusInProgress, models.StatusCompleted, models.StatusOnHold:
		return true
	}
	return false
}

// apply copies the provided fields onto project.
func (req projectRequest) apply(project *models.Project) error {
	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Technologies != nil {
		project.Technologies = req.Technologies
	}
	if req.GithubLink != nil {
		project.GithubLink = *req.GithubLink
	}
	if req.DemoLink != nil {
		project.DemoLink = *req.DemoLink
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return errs.NewBadRequestError("invalid status")
		}
		project.Status = models.ProjectStatus(*req.Status)
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return errs.NewBadRequestError("invalid startDate")
		}
		project.StartDate = start
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			project.EndDate = nil
		} else {
			end, err := parseDate(*req.EndDate)
			if err != nil {
				return errs.NewBadRequestError("invalid endDate")
			}
			project.EndDate = &end
		}
	}
	if req.Body != nil {
		project.Body = *req.Body
	}
	if req.Tags != nil {
		project.Tags = req.Tags
	}
	if req.TeamSize != nil {
		project.TeamSize = *req.TeamSize
	}
	return nil
}

// getFeaturedProjects is the public landing-page listing. Ownership is
// stripped from every element.
func (h projectHandler) getFeaturedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindFeatured()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		public := make([]models.Project, 0, len(projects))
		for _, project := range projects {
			public = append(public, project.Public())
		}

		h.responder.WriteJSON(w, public)
	}
}

// parseProjectFilter maps the list query parameters onto a ProjectFilter.
func parseProjectFilter(r *http.Request) database.ProjectFilter {
	q := r.URL.Query()

	filter := database.ProjectFilter{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	if raw := q.Get("technologies"); raw != "" {
		for _, tech := range strings.Split(raw, ",") {
			if tech = strings.TrimSpace(tech); tech != "" {
				filter.Technologies = append(filter.Technologies, tech)
			}
		}
	}

	if year, err := strconv.Atoi(q.Get("startDate")); err == nil {
		filter.StartYear = year
	}
	if year, err := strconv.Atoi(q.Get("endDate")); err == nil {
		filter.EndYear = year
	}

	return filter
}

// getMyProjects lists the authenticated user's projects with optional
// filtering and sorting.
func (h projectHandler) getMyProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
			return
		}

		projects, err := h.projects.FindByUser(user.ID, parseProjectFilter(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// createProject stores a new project owned by the authenticated user.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == nil || *req.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title"))
			return
		}
		if req.Description == nil || *req.Description == "" {
			h.responder.WriteError(w, errs.NewValidationError("description"))
			return
		}
		if req.StartDate == nil || *req.StartDate == "" {
			h.responder.WriteError(w, errs.NewValidationError("startDate"))
			return
		}

		var project models.Project
		if err := req.apply(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if project.Status == "" {
			project.Status = models.StatusPlanning
		}
		if project.TeamSize == 0 {
			project.TeamSize = 1
		}
		ownerID := user.ID
		project.UserID = &ownerID

		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// loadOwnedProject fetches a project and enforces the ownership check
// shared by update and delete.
func (h projectHandler) loadOwnedProject(r *http.Request, w http.ResponseWriter) (*models.Project, uuid.UUID, bool) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
		return nil, uuid.Nil, false
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return nil, uuid.Nil, false
	}

	project, err := h.projects.FindByID(projectID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
		return nil, uuid.Nil, false
	}
	if project == nil {
		h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
		return nil, uuid.Nil, false
	}
	if project.UserID != nil && *project.UserID != user.ID {
		h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
		return nil, uuid.Nil, false
	}

	return project, projectID, true
}

// updateProject applies the provided fields over the stored record.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, projectID, ok := h.loadOwnedProject(r, w)
		if !ok {
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.apply(project); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		project.ID = projectID

		if err := h.projects.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes the record and echoes the deleted id so the client
// can reconcile its list without a refetch.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, projectID, ok := h.loadOwnedProject(r, w)
		if !ok {
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"id": projectID.String()})
	}
}
