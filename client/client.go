// Package client is the API layer the dashboard frontend drives: it holds
// the bearer token in durable storage, attaches it to every protected
// request, and exposes one method per REST endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmatos/portfolio-backend/models"
)

// APIError is a non-2xx response decoded from the server's error shape.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

type Client struct {
	baseURL string
	http    *http.Client
	store   *TokenStore

	mu    sync.Mutex
	token string
	user  *models.User
}

// New builds a client for the API at baseURL. Any token previously saved
// in store is picked up; call Bootstrap to validate it.
func New(baseURL string, store *TokenStore) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
	}
	if store != nil {
		token, err := store.Load()
		if err != nil {
			return nil, err
		}
		c.token = token
	}
	return c, nil
}

// Authenticated reports whether a validated identity is loaded.
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil
}

// CurrentUser returns the identity loaded by Bootstrap, Login, or Register.
func (c *Client) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

func (c *Client) setSession(token string, user *models.User) error {
	c.mu.Lock()
	c.token = token
	c.user = user
	c.mu.Unlock()
	if c.store != nil {
		return c.store.Save(token)
	}
	return nil
}

func (c *Client) clearSession() error {
	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()
	if c.store != nil {
		return c.store.Clear()
	}
	return nil
}

// Bootstrap validates a stored token against /api/users/me. A failed
// validation discards the token and leaves the client logged out; that is
// not an error.
func (c *Client) Bootstrap(ctx context.Context) (*models.User, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == "" {
		return nil, nil
	}

	var user models.User
	err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &user, true)
	if err != nil {
		if IsUnauthorized(err) {
			return nil, c.clearSession()
		}
		return nil, err
	}

	c.mu.Lock()
	c.user = &user
	c.mu.Unlock()
	return &user, nil
}

type identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (c *Client) startSession(ctx context.Context, path string, body any) (*models.User, error) {
	var ident identity
	if err := c.do(ctx, http.MethodPost, path, body, &ident, false); err != nil {
		return nil, err
	}

	user := &models.User{Name: ident.Name, Email: ident.Email}
	if err := c.setSession(ident.Token, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates an account and stores the returned session token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return c.startSession(ctx, "/api/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	return c.startSession(ctx, "/api/users/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Logout drops the session and the stored token.
func (c *Client) Logout() error {
	return c.clearSession()
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, current, updated string) error {
	return c.do(ctx, http.MethodPost, "/api/users/change-password", map[string]string{
		"currentPassword": current,
		"newPassword":     updated,
	}, nil, true)
}

// do runs one request. Protected calls attach the bearer token; error
// responses are decoded into APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		c.mu.Lock()
		token := c.token
		c.mu.Unlock()
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message == "" {
			errBody.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
