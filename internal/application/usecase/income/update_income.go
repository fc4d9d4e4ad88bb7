// Package income contains income-related use cases.
package income

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

// UpdateIncomeInput represents the input for income record update.
type UpdateIncomeInput struct {
	IncomeID     uuid.UUID
	UserID       uuid.UUID
	IncomeDate   time.Time
	IncomeSource string
	IncomeType   string
	Amount       decimal.Decimal
	Currency     string
	Notes        string
}

// UpdateIncomeOutput represents the output of income record update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income record update logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	events     adapter.EventPublisher
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository, events adapter.EventPublisher) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
		events:     events,
	}
}

// Execute performs the income record update. The stored record is replaced
// with the submitted values rather than patched field by field.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"income record not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income record: %w", err)
	}

	if income.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedAccess,
			"not authorized to update this income record",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	income.IncomeDate = input.IncomeDate
	income.IncomeSource = input.IncomeSource
	income.IncomeType = input.IncomeType
	income.Amount = input.Amount
	if input.Currency != "" {
		income.Currency = input.Currency
	}
	income.Notes = input.Notes
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income record: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Income record updated",
	})

	return &UpdateIncomeOutput{
		Income: income,
	}, nil
}
