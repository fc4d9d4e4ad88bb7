// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// GoalRequest represents the request body for goal creation and update.
type GoalRequest struct {
	Name          string  `json:"name" binding:"required"`
	TargetAmount  float64 `json:"targetAmount" binding:"required"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetDate    string  `json:"targetDate" binding:"required"`
	Status        string  `json:"status" binding:"omitempty,oneof='Not Started' 'In Progress' Completed Cancelled"`
	Notes         string  `json:"notes"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	TargetDate    string    `json:"targetDate"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID.String(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.InexactFloat64(),
		CurrentAmount: goal.CurrentAmount.InexactFloat64(),
		TargetDate:    goal.TargetDate.Format("2006-01-02"),
		Status:        string(goal.Status),
		Notes:         goal.Notes,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of Goal entities to response DTOs.
func ToGoalListResponse(goals []*entity.Goal) []GoalResponse {
	records := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		records[i] = ToGoalResponse(goal)
	}
	return records
}
