package client

import (
	"context"
	"fmt"
)

// DeleteSavingCascade deletes a saving together with its payments: payments
// first, in the order the server returns them, then the saving itself. If
// any payment deletion fails, the saving is left in place so no orphaned
// payments survive their parent.
func (c *Client) DeleteSavingCascade(ctx context.Context, savingID string) error {
	payments, err := c.SavingPayments().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list payments for saving %s: %w", savingID, err)
	}

	for _, payment := range payments {
		if payment.SavingID != savingID {
			continue
		}
		if err := c.SavingPayments().Delete(ctx, payment.ID); err != nil {
			return fmt.Errorf("failed to delete payment %s of saving %s: %w", payment.ID, savingID, err)
		}
	}

	return c.Savings().Delete(ctx, savingID)
}
