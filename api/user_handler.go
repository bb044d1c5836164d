package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dmatos/portfolio-backend/auth"
	"github.com/dmatos/portfolio-backend/errs"
	"github.com/dmatos/portfolio-backend/models"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     userStore
	tokens    *auth.TokenService
}

func newUserHandler(users userStore, tokens *auth.TokenService, production bool) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		users:     users,
		tokens:    tokens,
	}
}

// identityResponse is what registration and login hand back to the client.
type identityResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}

func (h userHandler) identity(user *models.User) (identityResponse, error) {
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return identityResponse{}, errs.NewInternalError("failed to issue token")
	}
	return identityResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

// register creates the owner account and logs it in.
func (h userHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if body.Name == "" || body.Email == "" || body.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("please add all fields"))
			return
		}

		existing, err := h.users.FindByEmail(body.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewDuplicateError("user already exists"))
			return
		}

		hashed, err := auth.HashPassword(body.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		user := models.User{Name: body.Name, Email: body.Email, Password: hashed}
		if err := h.users.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		response, err := h.identity(&user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, response)
	}
}

// login authenticates by email and password.
func (h userHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		user, err := h.users.FindByEmail(body.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil || !auth.CheckPassword(user.Password, body.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		response, err := h.identity(user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, response)
	}
}

// me returns the authenticated identity resolved by the middleware.
func (h userHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
			return
		}
		h.responder.WriteJSON(w, user)
	}
}

// changePassword verifies the current password before storing a new hash.
func (h userHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("not authorized"))
			return
		}

		var body struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if body.CurrentPassword == "" || body.NewPassword == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("please add all fields"))
			return
		}

		// The context copy has its hash cleared; fetch the stored one.
		stored, err := h.users.FindByID(user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if stored == nil || !auth.CheckPassword(stored.Password, body.CurrentPassword) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		hashed, err := auth.HashPassword(body.NewPassword)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}
		if err := h.users.UpdatePassword(user.ID, hashed); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "user", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "password updated"})
	}
}
