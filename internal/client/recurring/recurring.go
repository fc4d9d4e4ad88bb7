// Package recurring derives the monthly SavingPayment records for a
// recurring saving and submits them sequentially, best-effort.
package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/raghusami/personal-finance-tracker/internal/client"
	"github.com/raghusami/personal-finance-tracker/internal/client/notify"
)

const dateLayout = "2006-01-02"

// DefaultPaymentMethod is stamped on every generated payment.
const DefaultPaymentMethod = "Bank Transfer"

// Creator is the subset of the saving payment client the generator needs.
type Creator interface {
	Create(ctx context.Context, payment client.SavingPayment) (client.SavingPayment, error)
}

// Result reports the outcome of one generation run. Created may be smaller
// than Requested when a creation failed partway through; already-created
// payments are never rolled back.
type Result struct {
	Requested int
	Created   int
}

// Generate derives the payment drafts for a persisted saving: one per month
// for NumberOfMonths months, starting at the saving's date. Payment i keeps
// the anchor's day-of-month where the target month supports it and clamps
// to the last valid day otherwise (Jan 31 -> Feb 28 -> Mar 31). Returns nil
// for non-recurring savings and savings without a positive month count.
func Generate(saving client.Saving) ([]client.SavingPayment, error) {
	if saving.SavingType != client.SavingTypeRecurring || saving.NumberOfMonths < 1 {
		return nil, nil
	}

	anchor, err := time.Parse(dateLayout, saving.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid saving date %q: %w", saving.Date, err)
	}

	payments := make([]client.SavingPayment, saving.NumberOfMonths)
	for i := range payments {
		payments[i] = client.SavingPayment{
			SavingID:      saving.ID,
			Date:          addMonthsClamped(anchor, i).Format(dateLayout),
			Amount:        saving.Amount,
			Status:        client.PaymentStatusPending,
			PaymentMethod: DefaultPaymentMethod,
			Notes:         fmt.Sprintf("Auto-generated for month %d", i+1),
		}
	}
	return payments, nil
}

// addMonthsClamped advances t by the given number of calendar months,
// holding the day-of-month constant where the target month supports it and
// clamping to the target month's last day otherwise. time.AddDate alone
// would normalise Jan 31 + 1 month into Mar 3.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// Generator submits generated payments through the entity client.
type Generator struct {
	payments Creator
	sink     notify.Sink
}

// NewGenerator creates a generator.
func NewGenerator(payments Creator, sink notify.Sink) *Generator {
	return &Generator{
		payments: payments,
		sink:     sink,
	}
}

// Run generates and creates the payments for a recurring saving, in month
// order, awaiting each creation before issuing the next. On a failure the
// run stops; payments already created stay (no rollback) and the result
// carries the partial count so a retry can target the remainder.
func (g *Generator) Run(ctx context.Context, saving client.Saving) (Result, error) {
	drafts, err := Generate(saving)
	if err != nil {
		return Result{}, err
	}

	result := Result{Requested: len(drafts)}
	for i, draft := range drafts {
		if _, err := g.payments.Create(ctx, draft); err != nil {
			g.sink.Notify(notify.SeverityError, fmt.Sprintf(
				"Created %d of %d saving payments before a failure", result.Created, result.Requested))
			return result, fmt.Errorf("failed to create payment %d of %d: %w", i+1, result.Requested, err)
		}
		result.Created++
	}

	if result.Requested > 0 {
		g.sink.Notify(notify.SeveritySuccess, fmt.Sprintf("Generated %d saving payments", result.Created))
	}
	return result, nil
}
