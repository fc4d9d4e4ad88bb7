// Package budgetperiod contains budget period-related use cases.
package budgetperiod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// UpdateBudgetPeriodInput represents the input for budget period update.
type UpdateBudgetPeriodInput struct {
	BudgetPeriodID uuid.UUID
	UserID         uuid.UUID
	FromDate       time.Time
	ToDate         time.Time
	Category       string
	Amount         decimal.Decimal
	Notes          string
	DurationType   entity.DurationType
}

// UpdateBudgetPeriodOutput represents the output of budget period update.
type UpdateBudgetPeriodOutput struct {
	BudgetPeriod *entity.BudgetPeriod
}

// UpdateBudgetPeriodUseCase handles budget period update logic.
type UpdateBudgetPeriodUseCase struct {
	budgetRepo adapter.BudgetPeriodRepository
	events     adapter.EventPublisher
}

// NewUpdateBudgetPeriodUseCase creates a new UpdateBudgetPeriodUseCase instance.
func NewUpdateBudgetPeriodUseCase(budgetRepo adapter.BudgetPeriodRepository, events adapter.EventPublisher) *UpdateBudgetPeriodUseCase {
	return &UpdateBudgetPeriodUseCase{
		budgetRepo: budgetRepo,
		events:     events,
	}
}

// Execute performs the budget period update. The stored record is replaced
// with the submitted values rather than patched field by field.
func (uc *UpdateBudgetPeriodUseCase) Execute(ctx context.Context, input UpdateBudgetPeriodInput) (*UpdateBudgetPeriodOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetPeriodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetPeriodNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"budget period not found",
				domainerror.ErrBudgetPeriodNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget period: %w", err)
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedAccess,
			"not authorized to update this budget period",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	budget.FromDate = input.FromDate
	budget.ToDate = input.ToDate
	budget.Category = input.Category
	budget.Amount = input.Amount
	budget.Notes = input.Notes
	if input.DurationType != "" {
		budget.DurationType = input.DurationType
	}
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget period: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Budget period updated",
	})

	return &UpdateBudgetPeriodOutput{
		BudgetPeriod: budget,
	}, nil
}
