// Package income contains income-related use cases.
package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// DeleteIncomeInput represents the input for income record deletion.
type DeleteIncomeInput struct {
	IncomeID uuid.UUID
	UserID   uuid.UUID
}

// DeleteIncomeOutput represents the output of income record deletion.
type DeleteIncomeOutput struct {
	Success bool
}

// DeleteIncomeUseCase handles income record deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	events     adapter.EventPublisher
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository, events adapter.EventPublisher) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
		events:     events,
	}
}

// Execute performs the income record deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
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
			"not authorized to delete this income record",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return nil, fmt.Errorf("failed to delete income record: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Income record deleted",
	})

	return &DeleteIncomeOutput{
		Success: true,
	}, nil
}
