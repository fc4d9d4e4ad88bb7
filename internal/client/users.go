package client

import (
	"context"
	"fmt"
	"net/http"
)

// UserUpdate is the payload for a profile update. Email, username, and
// password are changed through the auth endpoints, not here.
type UserUpdate struct {
	Firstname           string   `json:"firstname"`
	Lastname            string   `json:"lastname"`
	MobileNumber        string   `json:"mobileNumber"`
	IsCoupleModeEnabled bool     `json:"isCoupleModeEnabled"`
	PreferredCurrency   string   `json:"preferredCurrency"`
	IncomeGoal          *float64 `json:"incomeGoal"`
	SavingGoal          *float64 `json:"savingGoal"`
	InvestmentGoal      *float64 `json:"investmentGoal"`
}

// UserClient reads and updates the authenticated user's profile. Unlike
// the record resources there is no list, create, or delete: accounts come
// from registration and only their own profile is visible.
type UserClient struct {
	c *Client
}

// Users returns the user profile client.
func (c *Client) Users() *UserClient {
	return &UserClient{c: c}
}

// Get fetches a user profile by id.
func (u *UserClient) Get(ctx context.Context, id string) (User, error) {
	var user User
	if err := u.c.do(ctx, http.MethodGet, "/api/v1/users/"+id, nil, &user); err != nil {
		return User{}, fmt.Errorf("get user %s failed: %w", id, err)
	}
	return user, nil
}

// Update replaces the profile fields of the user with the given id.
func (u *UserClient) Update(ctx context.Context, id string, update UserUpdate) (User, error) {
	var user User
	if err := u.c.do(ctx, http.MethodPut, "/api/v1/users/"+id, update, &user); err != nil {
		return User{}, fmt.Errorf("update user %s failed: %w", id, err)
	}
	return user, nil
}
