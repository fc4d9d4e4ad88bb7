// Package budgetperiod contains budget period-related use cases.
package budgetperiod

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// GetBudgetPeriodInput represents the input for retrieving one budget period.
type GetBudgetPeriodInput struct {
	BudgetPeriodID uuid.UUID
	UserID         uuid.UUID
}

// GetBudgetPeriodOutput represents the output of budget period retrieval.
type GetBudgetPeriodOutput struct {
	BudgetPeriod *entity.BudgetPeriod
}

// GetBudgetPeriodUseCase handles single budget period retrieval.
type GetBudgetPeriodUseCase struct {
	budgetRepo adapter.BudgetPeriodRepository
}

// NewGetBudgetPeriodUseCase creates a new GetBudgetPeriodUseCase instance.
func NewGetBudgetPeriodUseCase(budgetRepo adapter.BudgetPeriodRepository) *GetBudgetPeriodUseCase {
	return &GetBudgetPeriodUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute retrieves the budget period.
func (uc *GetBudgetPeriodUseCase) Execute(ctx context.Context, input GetBudgetPeriodInput) (*GetBudgetPeriodOutput, error) {
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
			"not authorized to access this budget period",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	return &GetBudgetPeriodOutput{
		BudgetPeriod: budget,
	}, nil
}
