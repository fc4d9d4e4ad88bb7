// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// GetInvestmentInput represents the input for retrieving one investment.
type GetInvestmentInput struct {
	InvestmentID uuid.UUID
	UserID       uuid.UUID
}

// GetInvestmentOutput represents the output of investment retrieval.
type GetInvestmentOutput struct {
	Investment *entity.Investment
}

// GetInvestmentUseCase handles single investment retrieval.
type GetInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewGetInvestmentUseCase creates a new GetInvestmentUseCase instance.
func NewGetInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *GetInvestmentUseCase {
	return &GetInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute retrieves the investment.
func (uc *GetInvestmentUseCase) Execute(ctx context.Context, input GetInvestmentInput) (*GetInvestmentOutput, error) {
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
			"not authorized to access this investment",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	return &GetInvestmentOutput{
		Investment: investment,
	}, nil
}
