// Package savingpayment contains saving payment-related use cases.
package savingpayment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// GetSavingPaymentInput represents the input for retrieving one saving payment.
type GetSavingPaymentInput struct {
	SavingPaymentID uuid.UUID
	UserID          uuid.UUID
}

// GetSavingPaymentOutput represents the output of saving payment retrieval.
type GetSavingPaymentOutput struct {
	SavingPayment *entity.SavingPayment
}

// GetSavingPaymentUseCase handles single saving payment retrieval.
type GetSavingPaymentUseCase struct {
	paymentRepo adapter.SavingPaymentRepository
}

// NewGetSavingPaymentUseCase creates a new GetSavingPaymentUseCase instance.
func NewGetSavingPaymentUseCase(paymentRepo adapter.SavingPaymentRepository) *GetSavingPaymentUseCase {
	return &GetSavingPaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute retrieves the saving payment.
func (uc *GetSavingPaymentUseCase) Execute(ctx context.Context, input GetSavingPaymentInput) (*GetSavingPaymentOutput, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, input.SavingPaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingPaymentNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"saving payment not found",
				domainerror.ErrSavingPaymentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find saving payment: %w", err)
	}

	if payment.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedAccess,
			"not authorized to access this saving payment",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	return &GetSavingPaymentOutput{
		SavingPayment: payment,
	}, nil
}
