// Package budgetperiod contains budget period-related use cases.
package budgetperiod

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// ListBudgetPeriodsInput represents the input for listing a user's budget periods.
type ListBudgetPeriodsInput struct {
	UserID uuid.UUID
}

// ListBudgetPeriodsOutput represents the output of budget period listing.
type ListBudgetPeriodsOutput struct {
	BudgetPeriods []*entity.BudgetPeriod
}

// ListBudgetPeriodsUseCase handles budget period listing.
type ListBudgetPeriodsUseCase struct {
	budgetRepo adapter.BudgetPeriodRepository
}

// NewListBudgetPeriodsUseCase creates a new ListBudgetPeriodsUseCase instance.
func NewListBudgetPeriodsUseCase(budgetRepo adapter.BudgetPeriodRepository) *ListBudgetPeriodsUseCase {
	return &ListBudgetPeriodsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute lists all budget periods belonging to the user.
func (uc *ListBudgetPeriodsUseCase) Execute(ctx context.Context, input ListBudgetPeriodsInput) (*ListBudgetPeriodsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget periods: %w", err)
	}

	return &ListBudgetPeriodsOutput{
		BudgetPeriods: budgets,
	}, nil
}
