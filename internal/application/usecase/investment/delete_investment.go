// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	InvestmentID uuid.UUID
	UserID       uuid.UUID
}

// DeleteInvestmentOutput represents the output of investment deletion.
type DeleteInvestmentOutput struct {
	Success bool
}

// DeleteInvestmentUseCase handles investment deletion logic.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	events         adapter.EventPublisher
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentRepo adapter.InvestmentRepository, events adapter.EventPublisher) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		investmentRepo: investmentRepo,
		events:         events,
	}
}

// Execute performs the investment deletion.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) (*DeleteInvestmentOutput, error) {
	investment, err := uc.investmentRepo.FindByID(ctx, input.InvestmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvestmentNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"investment not found",
				domainerror.ErrInvestmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}

	if investment.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedAccess,
			"not authorized to delete this investment",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.investmentRepo.Delete(ctx, input.InvestmentID); err != nil {
		return nil, fmt.Errorf("failed to delete investment: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Investment deleted",
	})

	return &DeleteInvestmentOutput{
		Success: true,
	}, nil
}
