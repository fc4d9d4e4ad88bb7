// Package savingpayment contains saving payment-related use cases.
package savingpayment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// ListSavingPaymentsInput represents the input for listing a user's saving payments.
type ListSavingPaymentsInput struct {
	UserID uuid.UUID
}

// ListSavingPaymentsOutput represents the output of saving payment listing.
type ListSavingPaymentsOutput struct {
	SavingPayments []*entity.SavingPayment
}

// ListSavingPaymentsUseCase handles saving payment listing.
type ListSavingPaymentsUseCase struct {
	paymentRepo adapter.SavingPaymentRepository
}

// NewListSavingPaymentsUseCase creates a new ListSavingPaymentsUseCase instance.
func NewListSavingPaymentsUseCase(paymentRepo adapter.SavingPaymentRepository) *ListSavingPaymentsUseCase {
	return &ListSavingPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute lists all saving payments belonging to the user.
func (uc *ListSavingPaymentsUseCase) Execute(ctx context.Context, input ListSavingPaymentsInput) (*ListSavingPaymentsOutput, error) {
	payments, err := uc.paymentRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saving payments: %w", err)
	}

	return &ListSavingPaymentsOutput{
		SavingPayments: payments,
	}, nil
}
