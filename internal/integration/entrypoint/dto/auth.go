// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Firstname    string `json:"firstname" binding:"required,min=1,max=100"`
	Lastname     string `json:"lastname" binding:"max=100"`
	Email        string `json:"email" binding:"required,email"`
	MobileNumber string `json:"mobileNumber" binding:"max=20"`
	Username     string `json:"username" binding:"required,min=3,max=100"`
	Password     string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest represents the request body for forgot password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the request body for password reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
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

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	response := UserResponse{
		ID:                  user.ID.String(),
		Firstname:           user.Firstname,
		Lastname:            user.Lastname,
		Email:               user.Email,
		MobileNumber:        user.MobileNumber,
		Username:            user.Username,
		IsCoupleModeEnabled: user.IsCoupleModeEnabled,
		PreferredCurrency:   user.PreferredCurrency,
		CreatedAt:           user.CreatedAt,
	}

	if user.IncomeGoal != nil {
		v := user.IncomeGoal.InexactFloat64()
		response.IncomeGoal = &v
	}
	if user.SavingGoal != nil {
		v := user.SavingGoal.InexactFloat64()
		response.SavingGoal = &v
	}
	if user.InvestmentGoal != nil {
		v := user.InvestmentGoal.InexactFloat64()
		response.InvestmentGoal = &v
	}

	return response
}
