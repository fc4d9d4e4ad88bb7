// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Firstname           string           `gorm:"type:varchar(100);not null"`
	Lastname            string           `gorm:"type:varchar(100)"`
	Email               string           `gorm:"type:varchar(255);uniqueIndex;not null"`
	MobileNumber        string           `gorm:"type:varchar(20)"`
	Username            string           `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash        string           `gorm:"type:varchar(255);not null"`
	IsCoupleModeEnabled bool             `gorm:"default:false"`
	PreferredCurrency   string           `gorm:"type:varchar(10);default:'INR'"`
	IncomeGoal          *decimal.Decimal `gorm:"type:decimal(15,2)"`
	SavingGoal          *decimal.Decimal `gorm:"type:decimal(15,2)"`
	InvestmentGoal      *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt           time.Time        `gorm:"not null"`
	UpdatedAt           time.Time        `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                  m.ID,
		Firstname:           m.Firstname,
		Lastname:            m.Lastname,
		Email:               m.Email,
		MobileNumber:        m.MobileNumber,
		Username:            m.Username,
		PasswordHash:        m.PasswordHash,
		IsCoupleModeEnabled: m.IsCoupleModeEnabled,
		PreferredCurrency:   m.PreferredCurrency,
		IncomeGoal:          m.IncomeGoal,
		SavingGoal:          m.SavingGoal,
		InvestmentGoal:      m.InvestmentGoal,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                  user.ID,
		Firstname:           user.Firstname,
		Lastname:            user.Lastname,
		Email:               user.Email,
		MobileNumber:        user.MobileNumber,
		Username:            user.Username,
		PasswordHash:        user.PasswordHash,
		IsCoupleModeEnabled: user.IsCoupleModeEnabled,
		PreferredCurrency:   user.PreferredCurrency,
		IncomeGoal:          user.IncomeGoal,
		SavingGoal:          user.SavingGoal,
		InvestmentGoal:      user.InvestmentGoal,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// PasswordResetTokenModel represents the password_reset_tokens table.
type PasswordResetTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Token     string     `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Used      bool       `gorm:"default:false"`
	UsedAt    *time.Time `gorm:"type:timestamptz"`
	ExpiresAt time.Time  `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PasswordResetTokenModel.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
