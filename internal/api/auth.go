package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nycmg/nycmg-cli/internal/models"
	"github.com/nycmg/nycmg-cli/internal/shared"
)

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account creation payload.
type Registration struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	IsArtist  bool   `json:"is_artist,omitempty"`
	BoroughID string `json:"borough_id,omitempty"`
}

// ProfileUpdate carries mutable profile fields for PUT /auth/profile.
type ProfileUpdate struct {
	Username  string `json:"username,omitempty"`
	Bio       string `json:"bio,omitempty"`
	BoroughID string `json:"borough_id,omitempty"`
}

// AuthResponse is returned by login, register, and refresh.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", shared.ErrMissingArgument)
	}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	if reg.Email == "" || reg.Username == "" || reg.Password == "" {
		return nil, fmt.Errorf("%w: email, username, and password are required", shared.ErrMissingArgument)
	}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile retrieves the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile modifies the authenticated user's profile.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/profile", update, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Refresh exchanges the current token for a fresh one.
func (c *Client) Refresh(ctx context.Context) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
