// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed when a record carries none.
const DefaultCurrency = "INR"

// User represents a registered user of the Personal Finance Tracker.
type User struct {
	ID                  uuid.UUID
	Firstname           string
	Lastname            string
	Email               string
	MobileNumber        string
	Username            string
	PasswordHash        string
	IsCoupleModeEnabled bool
	PreferredCurrency   string
	IncomeGoal          *decimal.Decimal
	SavingGoal          *decimal.Decimal
	InvestmentGoal      *decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewUser creates a new User with default values.
func NewUser(firstname, lastname, email, mobileNumber, username, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                uuid.New(),
		Firstname:         firstname,
		Lastname:          lastname,
		Email:             email,
		MobileNumber:      mobileNumber,
		Username:          username,
		PasswordHash:      passwordHash,
		PreferredCurrency: DefaultCurrency,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.Lastname == "" {
		return u.Firstname
	}
	return u.Firstname + " " + u.Lastname
}
