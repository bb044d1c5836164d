package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dmatos/portfolio-backend/errs"
	"github.com/dmatos/portfolio-backend/models"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skills    skillStore
}

func newSkillHandler(skills skillStore, production bool) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		skills:    skills,
	}
}

type skillRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// getAllSkills is the public listing, ordered category then name.
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skills.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		public := make([]models.Skill, 0, len(skills))
		for _, skill := range skills {
			public = append(public, skill.Public())
		}

		h.responder.WriteJSON(w, public)
	}
}

// getSkillsByCategory is the public per-category listing.
func (h skillHandler) getSkillsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		if category == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing category"))
			return
		}

		skills, err := h.skills.FindByCategory(category)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		public := make([]models.Skill, 0, len(skills))
		for _, skill := range skills {
			public = append(public, skill.Public())
		}

		h.responder.WriteJSON(w, public)
	}
}

// createSkill stores a new skill after the duplicate probe. The probe and
// the insert are not atomic; a concurrent duplicate create can slip
// through, which the API tolerates.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
			return
		}

		var req skillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == nil || *req.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name"))
			return
		}
		if req.Category == nil || *req.Category == "" {
			h.responder.WriteError(w, errs.NewValidationError("category"))
			return
		}
		if !models.ValidSkillCategory(*req.Category) {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid category"))
			return
		}

		duplicate, err := h.skills.FindDuplicate(*req.Name, *req.Category, nil)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if duplicate != nil {
			h.responder.WriteError(w, errs.NewDuplicateError("skill already exists in this category"))
			return
		}

		ownerID := user.ID
		skill := models.Skill{Name: *req.Name, Category: *req.Category, UserID: &ownerID}
		if err := h.skills.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) loadOwnedSkill(r *http.Request, w http.ResponseWriter) (*models.Skill, uuid.UUID, bool) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
		return nil, uuid.Nil, false
	}

	skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
		return nil, uuid.Nil, false
	}

	skill, err := h.skills.FindByID(skillID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
		return nil, uuid.Nil, false
	}
	if skill == nil {
		h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
		return nil, uuid.Nil, false
	}
	if skill.UserID != nil && *skill.UserID != user.ID {
		h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
		return nil, uuid.Nil, false
	}

	return skill, skillID, true
}

// updateSkill re-runs the duplicate probe against the new name/category,
// excluding the record itself.
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill, skillID, ok := h.loadOwnedSkill(r, w)
		if !ok {
			return
		}

		var req skillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		name := skill.Name
		category := skill.Category
		if req.Name != nil && *req.Name != "" {
			name = *req.Name
		}
		if req.Category != nil && *req.Category != "" {
			if !models.ValidSkillCategory(*req.Category) {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid category"))
				return
			}
			category = *req.Category
		}

		duplicate, err := h.skills.FindDuplicate(name, category, &skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if duplicate != nil {
			h.responder.WriteError(w, errs.NewDuplicateError("skill already exists in this category"))
			return
		}

		skill.Name = name
		skill.Category = category
		if err := h.skills.Update(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, skillID, ok := h.loadOwnedSkill(r, w)
		if !ok {
			return
		}

		if err := h.skills.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"id": skillID.String()})
	}
}
