// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// ListInvestmentsInput represents the input for listing a user's investments.
type ListInvestmentsInput struct {
	UserID uuid.UUID
}

// ListInvestmentsOutput represents the output of investment listing.
type ListInvestmentsOutput struct {
	Investments []*entity.Investment
}

// ListInvestmentsUseCase handles investment listing.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute lists all investments belonging to the user.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	return &ListInvestmentsOutput{
		Investments: investments,
	}, nil
}
