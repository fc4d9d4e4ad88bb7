// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// CreateIncomeInput represents the input for income record creation.
type CreateIncomeInput struct {
	UserID       uuid.UUID
	IncomeDate   time.Time
	IncomeSource string
	IncomeType   string
	Amount       decimal.Decimal
	Currency     string
	Notes        string
}

// CreateIncomeOutput represents the output of income record creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income record creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	events     adapter.EventPublisher
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository, events adapter.EventPublisher) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
		events:     events,
	}
}

// Execute performs the income record creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	income := entity.NewIncome(
		input.UserID,
		input.IncomeDate,
		input.IncomeSource,
		input.IncomeType,
		input.Amount,
		input.Currency,
		input.Notes,
	)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income record: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Income record created",
	})

	return &CreateIncomeOutput{
		Income: income,
	}, nil
}
