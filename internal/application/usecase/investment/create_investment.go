// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// CreateInvestmentInput represents the input for investment creation.
type CreateInvestmentInput struct {
	UserID         uuid.UUID
	Date           time.Time
	InvestmentType string
	Platform       string
	Amount         decimal.Decimal
	Description    string
	Status         entity.InvestmentStatus
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.Investment
}

// CreateInvestmentUseCase handles investment creation logic.
type CreateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	events         adapter.EventPublisher
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(investmentRepo adapter.InvestmentRepository, events adapter.EventPublisher) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentRepo: investmentRepo,
		events:         events,
	}
}

// Execute performs the investment creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	investment := entity.NewInvestment(
		input.UserID,
		input.Date,
		input.InvestmentType,
		input.Platform,
		input.Amount,
		input.Description,
	)

	if input.Status != "" {
		investment.Status = input.Status
	}

	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Investment created",
	})

	return &CreateInvestmentOutput{
		Investment: investment,
	}, nil
}
