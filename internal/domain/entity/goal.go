// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the progress state of a savings goal.
type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "Not Started"
	GoalStatusInProgress GoalStatus = "In Progress"
	GoalStatusCompleted  GoalStatus = "Completed"
	GoalStatusCancelled  GoalStatus = "Cancelled"
)

// Goal represents a target amount the user is saving towards.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Status        GoalStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity.
func NewGoal(
	userID uuid.UUID,
	name string,
	targetAmount, currentAmount decimal.Decimal,
	targetDate time.Time,
	status GoalStatus,
	notes string,
) *Goal {
	now := time.Now().UTC()

	if status == "" {
		status = GoalStatusNotStarted
	}

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		Status:        status,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
