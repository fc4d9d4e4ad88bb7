// Package investment contains investment-related use cases.
package investment

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

// UpdateInvestmentInput represents the input for investment update.
type UpdateInvestmentInput struct {
	InvestmentID   uuid.UUID
	UserID         uuid.UUID
	Date           time.Time
	InvestmentType string
	Platform       string
	Amount         decimal.Decimal
	Description    string
	Status         entity.InvestmentStatus
}

// UpdateInvestmentOutput represents the output of investment update.
type UpdateInvestmentOutput struct {
	Investment *entity.Investment
}

// UpdateInvestmentUseCase handles investment update logic.
type UpdateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	events         adapter.EventPublisher
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(investmentRepo adapter.InvestmentRepository, events adapter.EventPublisher) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentRepo: investmentRepo,
		events:         events,
	}
}

// Execute performs the investment update. The stored record is replaced
// with the submitted values rather than patched field by field.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
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
			"not authorized to update this investment",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	investment.Date = input.Date
	investment.InvestmentType = input.InvestmentType
	investment.Platform = input.Platform
	investment.Amount = input.Amount
	investment.Description = input.Description
	if input.Status != "" {
		investment.Status = input.Status
	}
	investment.UpdatedAt = time.Now().UTC()

	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Investment updated",
	})

	return &UpdateInvestmentOutput{
		Investment: investment,
	}, nil
}
