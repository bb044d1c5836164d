package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmatos/portfolio-backend/auth"
	"github.com/dmatos/portfolio-backend/models"
)

func newTestUserHandler(users *fakeUserStore) (userHandler, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return newUserHandler(users, tokens, true), tokens
}

func TestRegister(t *testing.T) {
	t.Run("missing fields rejected", func(t *testing.T) {
		h, _ := newTestUserHandler(&fakeUserStore{})

		for _, body := range []string{
			`{}`,
			`{"name":"A"}`,
			`{"name":"A","email":"a@x.com"}`,
			`{"email":"a@x.com","password":"secret123"}`,
		} {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
			h.register().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		users := &fakeUserStore{}
		existing := models.User{Name: "A", Email: "a@x.com", Password: "hash"}
		require.NoError(t, users.Add(&existing))

		h, _ := newTestUserHandler(users)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users",
			strings.NewReader(`{"name":"B","email":"a@x.com","password":"secret123"}`))
		h.register().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeMessage(t, rec), "already exists")
	})

	t.Run("token resolves to the new identity", func(t *testing.T) {
		users := &fakeUserStore{}
		h, tokens := newTestUserHandler(users)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users",
			strings.NewReader(`{"name":"A","email":"a@x.com","password":"secret123"}`))
		h.register().ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp identityResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "A", resp.Name)
		assert.Equal(t, "a@x.com", resp.Email)

		verified, err := tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.ID, verified)

		stored, err := users.FindByEmail("a@x.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID, verified)
		assert.NotEqual(t, "secret123", stored.Password, "password must be stored hashed")
	})
}

func TestLogin(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	users := &fakeUserStore{}
	user := models.User{Name: "A", Email: "a@x.com", Password: hashed}
	require.NoError(t, users.Add(&user))

	h, tokens := newTestUserHandler(users)

	t.Run("wrong password rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"email":"a@x.com","password":"wrong"}`))
		h.login().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"email":"b@x.com","password":"secret123"}`))
		h.login().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid credentials return identity and token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"email":"a@x.com","password":"secret123"}`))
		h.login().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp identityResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.ID)

		verified, err := tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, verified)
	})
}

func TestChangePassword(t *testing.T) {
	hashed, err := auth.HashPassword("old-password")
	require.NoError(t, err)

	users := &fakeUserStore{}
	user := models.User{Name: "A", Email: "a@x.com", Password: hashed}
	require.NoError(t, users.Add(&user))

	h, _ := newTestUserHandler(users)

	ctxUser := user
	ctxUser.Password = "" // middleware clears the hash

	t.Run("wrong current password rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/change-password",
			strings.NewReader(`{"currentPassword":"nope","newPassword":"new-password"}`))
		req = req.WithContext(ctxWithUser(req.Context(), &ctxUser))
		h.changePassword().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct current password accepted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/change-password",
			strings.NewReader(`{"currentPassword":"old-password","newPassword":"new-password"}`))
		req = req.WithContext(ctxWithUser(req.Context(), &ctxUser))
		h.changePassword().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := users.FindByID(user.ID)
		require.NoError(t, err)
		assert.True(t, auth.CheckPassword(stored.Password, "new-password"))
	})
}

func TestMe(t *testing.T) {
	h, _ := newTestUserHandler(&fakeUserStore{})

	t.Run("without identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		h.me().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with identity", func(t *testing.T) {
		user := &models.User{Name: "A", Email: "a@x.com"}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req = req.WithContext(ctxWithUser(req.Context(), user))
		h.me().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got models.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "a@x.com", got.Email)
	})
}
