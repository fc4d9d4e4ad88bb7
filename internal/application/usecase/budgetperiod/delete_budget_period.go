// Package budgetperiod contains budget period-related use cases.
package budgetperiod

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// DeleteBudgetPeriodInput represents the input for budget period deletion.
type DeleteBudgetPeriodInput struct {
	BudgetPeriodID uuid.UUID
	UserID         uuid.UUID
}

// DeleteBudgetPeriodOutput represents the output of budget period deletion.
type DeleteBudgetPeriodOutput struct {
	Success bool
}

// DeleteBudgetPeriodUseCase handles budget period deletion logic.
type DeleteBudgetPeriodUseCase struct {
	budgetRepo adapter.BudgetPeriodRepository
	events     adapter.EventPublisher
}

// NewDeleteBudgetPeriodUseCase creates a new DeleteBudgetPeriodUseCase instance.
func NewDeleteBudgetPeriodUseCase(budgetRepo adapter.BudgetPeriodRepository, events adapter.EventPublisher) *DeleteBudgetPeriodUseCase {
	return &DeleteBudgetPeriodUseCase{
		budgetRepo: budgetRepo,
		events:     events,
	}
}

// Execute performs the budget period deletion.
func (uc *DeleteBudgetPeriodUseCase) Execute(ctx context.Context, input DeleteBudgetPeriodInput) (*DeleteBudgetPeriodOutput, error) {
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
			"not authorized to delete this budget period",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.budgetRepo.Delete(ctx, input.BudgetPeriodID); err != nil {
		return nil, fmt.Errorf("failed to delete budget period: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Budget period deleted",
	})

	return &DeleteBudgetPeriodOutput{
		Success: true,
	}, nil
}
