// Package budgetperiod contains budget period-related use cases.
package budgetperiod

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// CreateBudgetPeriodInput represents the input for budget period creation.
type CreateBudgetPeriodInput struct {
	UserID       uuid.UUID
	FromDate     time.Time
	ToDate       time.Time
	Category     string
	Amount       decimal.Decimal
	Notes        string
	DurationType entity.DurationType
}

// CreateBudgetPeriodOutput represents the output of budget period creation.
type CreateBudgetPeriodOutput struct {
	BudgetPeriod *entity.BudgetPeriod
}

// CreateBudgetPeriodUseCase handles budget period creation logic.
type CreateBudgetPeriodUseCase struct {
	budgetRepo adapter.BudgetPeriodRepository
	events     adapter.EventPublisher
}

// NewCreateBudgetPeriodUseCase creates a new CreateBudgetPeriodUseCase instance.
func NewCreateBudgetPeriodUseCase(budgetRepo adapter.BudgetPeriodRepository, events adapter.EventPublisher) *CreateBudgetPeriodUseCase {
	return &CreateBudgetPeriodUseCase{
		budgetRepo: budgetRepo,
		events:     events,
	}
}

// Execute performs the budget period creation.
func (uc *CreateBudgetPeriodUseCase) Execute(ctx context.Context, input CreateBudgetPeriodInput) (*CreateBudgetPeriodOutput, error) {
	budget := entity.NewBudgetPeriod(
		input.UserID,
		input.FromDate,
		input.ToDate,
		input.Category,
		input.Amount,
		input.Notes,
		input.DurationType,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget period: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Budget period created",
	})

	return &CreateBudgetPeriodOutput{
		BudgetPeriod: budget,
	}, nil
}
