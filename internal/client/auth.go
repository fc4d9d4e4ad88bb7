package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// User is the account profile returned by the auth endpoints.
type User struct {
	ID                  string    `json:"id"`
	Firstname           string    `json:"firstname"`
	Lastname            string    `json:"lastname"`
	Email               string    `json:"email"`
	MobileNumber        string    `json:"mobileNumber"`
	Username            string    `json:"username"`
	IsCoupleModeEnabled bool      `json:"isCoupleModeEnabled"`
	PreferredCurrency   string    `json:"preferredCurrency"`
	IncomeGoal          *float64  `json:"incomeGoal,omitempty"`
	SavingGoal          *float64  `json:"savingGoal,omitempty"`
	InvestmentGoal      *float64  `json:"investmentGoal,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Session is an access/refresh token pair plus the authenticated user.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// RegisterInput is the payload for account registration.
type RegisterInput struct {
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

// Register creates a new account and stores the returned access token on
// the client.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", input, &session); err != nil {
		return nil, fmt.Errorf("register failed: %w", err)
	}
	c.token = session.AccessToken
	return &session, nil
}

// Login authenticates with email and password and stores the returned
// access token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &session); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	c.token = session.AccessToken
	return &session, nil
}

// Refresh exchanges a refresh token for a new token pair and stores the new
// access token on the client.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	body := map[string]any{"refreshToken": refreshToken}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", body, &session); err != nil {
		return nil, fmt.Errorf("refresh failed: %w", err)
	}
	c.token = session.AccessToken
	return &session, nil
}

// Logout revokes the refresh token and clears the stored access token.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]any{"refreshToken": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", body, nil); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.token = ""
	return nil
}
