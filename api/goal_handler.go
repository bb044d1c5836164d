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

// goalHandler serves the older dashboard's goal tracker. Same controller
// shape as projects, minus the public surface.
type goalHandler struct {
	responder Responder
	logger    zerolog.Logger
	goals     goalStore
}

func newGoalHandler(goals goalStore, production bool) goalHandler {
	logger := log.With().Str("handlerName", "goalHandler").Logger()

	return goalHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		goals:     goals,
	}
}

type goalRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TargetDate  *string `json:"targetDate"`
	Completed   *bool   `json:"completed"`
}

func (req goalRequest) apply(goal *models.Goal) error {
	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetDate != nil {
		if *req.TargetDate == "" {
			goal.TargetDate = nil
		} else {
			target, err := parseDate(*req.TargetDate)
			if err != nil {
				return errs.NewBadRequestError("invalid targetDate")
			}
			goal.TargetDate = &target
		}
	}
	if req.Completed != nil {
		goal.Completed = *req.Completed
	}
	return nil
}

func (h goalHandler) getMyGoals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
			return
		}

		goals, err := h.goals.FindByUser(user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "goals", err))
			return
		}

		h.responder.WriteJSON(w, goals)
	}
}

func (h goalHandler) createGoal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
			return
		}

		var req goalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == nil || *req.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title"))
			return
		}

		var goal models.Goal
		if err := req.apply(&goal); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		ownerID := user.ID
		goal.UserID = &ownerID

		if err := h.goals.Add(&goal); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "goal", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, goal)
	}
}

func (h goalHandler) loadOwnedGoal(r *http.Request, w http.ResponseWriter) (*models.Goal, uuid.UUID, bool) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
		return nil, uuid.Nil, false
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "goalID"))
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid goalID"))
		return nil, uuid.Nil, false
	}

	goal, err := h.goals.FindByID(goalID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "goal", err))
		return nil, uuid.Nil, false
	}
	if goal == nil {
		h.responder.WriteError(w, errs.NewNotFoundError("goal not found"))
		return nil, uuid.Nil, false
	}
	if goal.UserID != nil && *goal.UserID != user.ID {
		h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
		return nil, uuid.Nil, false
	}

	return goal, goalID, true
}

func (h goalHandler) updateGoal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goal, goalID, ok := h.loadOwnedGoal(r, w)
		if !ok {
			return
		}

		var req goalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.apply(goal); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		goal.ID = goalID

		if err := h.goals.Update(goal); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "goal", err))
			return
		}

		h.responder.WriteJSON(w, goal)
	}
}

func (h goalHandler) deleteGoal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, goalID, ok := h.loadOwnedGoal(r, w)
		if !ok {
			return
		}

		if err := h.goals.Delete(goalID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "goal", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"id": goalID.String()})
	}
}
