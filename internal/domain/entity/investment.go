// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentStatus represents whether an investment position is still held.
type InvestmentStatus string

const (
	InvestmentStatusActive InvestmentStatus = "Active"
	InvestmentStatusExited InvestmentStatus = "Exited"
)

// Investment represents one investment record.
type Investment struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Date           time.Time
	InvestmentType string // e.g. Mutual Fund, Stocks, SGB
	Platform       string // e.g. Zerodha, Groww
	Amount         decimal.Decimal
	Description    string
	Status         InvestmentStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewInvestment creates a new Investment entity.
func NewInvestment(
	userID uuid.UUID,
	date time.Time,
	investmentType, platform string,
	amount decimal.Decimal,
	description string,
) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:             uuid.New(),
		UserID:         userID,
		Date:           date,
		InvestmentType: investmentType,
		Platform:       platform,
		Amount:         amount,
		Description:    description,
		Status:         InvestmentStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
