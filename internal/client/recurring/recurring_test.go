package recurring

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/raghusami/personal-finance-tracker/internal/client"
	"github.com/raghusami/personal-finance-tracker/internal/client/notify"
)

func recurringSaving(date string, months int) client.Saving {
	return client.Saving{
		ID:             "sav-1",
		Date:           date,
		Title:          "Emergency fund",
		Amount:         250,
		SavingType:     client.SavingTypeRecurring,
		NumberOfMonths: months,
	}
}

func TestGenerate(t *testing.T) {
	t.Run("produces one payment per month", func(t *testing.T) {
		payments, err := Generate(recurringSaving("2025-03-15", 4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 4 {
			t.Fatalf("expected 4 payments, got %d", len(payments))
		}

		wantDates := []string{"2025-03-15", "2025-04-15", "2025-05-15", "2025-06-15"}
		for i, payment := range payments {
			if payment.Date != wantDates[i] {
				t.Errorf("payment %d: expected date %s, got %s", i, wantDates[i], payment.Date)
			}
			if payment.SavingID != "sav-1" {
				t.Errorf("payment %d: expected savingId sav-1, got %s", i, payment.SavingID)
			}
			if payment.Amount != 250 {
				t.Errorf("payment %d: expected amount 250, got %v", i, payment.Amount)
			}
			if payment.Status != client.PaymentStatusPending {
				t.Errorf("payment %d: expected status Pending, got %s", i, payment.Status)
			}
			if payment.PaymentMethod != DefaultPaymentMethod {
				t.Errorf("payment %d: expected payment method %q, got %q", i, DefaultPaymentMethod, payment.PaymentMethod)
			}
			wantNotes := fmt.Sprintf("Auto-generated for month %d", i+1)
			if payment.Notes != wantNotes {
				t.Errorf("payment %d: expected notes %q, got %q", i, wantNotes, payment.Notes)
			}
		}
	})

	t.Run("clamps to the last valid day of short months", func(t *testing.T) {
		payments, err := Generate(recurringSaving("2025-01-31", 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantDates := []string{"2025-01-31", "2025-02-28", "2025-03-31"}
		for i, payment := range payments {
			if payment.Date != wantDates[i] {
				t.Errorf("payment %d: expected date %s, got %s", i, wantDates[i], payment.Date)
			}
		}
	})

	t.Run("uses February 29 in leap years", func(t *testing.T) {
		payments, err := Generate(recurringSaving("2024-01-31", 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payments[1].Date != "2024-02-29" {
			t.Errorf("expected 2024-02-29, got %s", payments[1].Date)
		}
	})

	t.Run("December anchor rolls into the next year", func(t *testing.T) {
		payments, err := Generate(recurringSaving("2025-12-31", 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payments[1].Date != "2026-01-31" {
			t.Errorf("expected 2026-01-31, got %s", payments[1].Date)
		}
	})

	t.Run("one-time savings generate nothing", func(t *testing.T) {
		saving := recurringSaving("2025-01-01", 3)
		saving.SavingType = client.SavingTypeOneTime
		payments, err := Generate(saving)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payments != nil {
			t.Errorf("expected no payments, got %d", len(payments))
		}
	})

	t.Run("non-positive month count generates nothing", func(t *testing.T) {
		payments, err := Generate(recurringSaving("2025-01-01", 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payments != nil {
			t.Errorf("expected no payments, got %d", len(payments))
		}
	})

	t.Run("invalid anchor date is an error", func(t *testing.T) {
		if _, err := Generate(recurringSaving("31/01/2025", 3)); err == nil {
			t.Error("expected an error for an invalid date")
		}
	})
}

type fakeCreator struct {
	created []client.SavingPayment
	failAt  int // 1-based index of the creation that fails; 0 means never
}

func (f *fakeCreator) Create(_ context.Context, payment client.SavingPayment) (client.SavingPayment, error) {
	if f.failAt > 0 && len(f.created)+1 == f.failAt {
		return client.SavingPayment{}, errors.New("server unavailable")
	}
	f.created = append(f.created, payment)
	return payment, nil
}

type recordingSink struct {
	severities []notify.Severity
	messages   []string
}

func (s *recordingSink) Notify(severity notify.Severity, message string) {
	s.severities = append(s.severities, severity)
	s.messages = append(s.messages, message)
}

func TestGenerator_Run(t *testing.T) {
	t.Run("creates all payments in month order", func(t *testing.T) {
		creator := &fakeCreator{}
		sink := &recordingSink{}
		result, err := NewGenerator(creator, sink).Run(context.Background(), recurringSaving("2025-01-31", 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Created != 3 || result.Requested != 3 {
			t.Errorf("expected 3 of 3 created, got %d of %d", result.Created, result.Requested)
		}

		wantDates := []string{"2025-01-31", "2025-02-28", "2025-03-31"}
		for i, payment := range creator.created {
			if payment.Date != wantDates[i] {
				t.Errorf("creation %d: expected date %s, got %s", i, wantDates[i], payment.Date)
			}
		}
		if len(sink.severities) != 1 || sink.severities[0] != notify.SeveritySuccess {
			t.Errorf("expected one success notification, got %v", sink.severities)
		}
	})

	t.Run("partial failure keeps earlier payments and reports the count", func(t *testing.T) {
		creator := &fakeCreator{failAt: 3}
		sink := &recordingSink{}
		result, err := NewGenerator(creator, sink).Run(context.Background(), recurringSaving("2025-01-31", 5))
		if err == nil {
			t.Fatal("expected an error")
		}
		if result.Requested != 5 || result.Created != 2 {
			t.Errorf("expected 2 of 5 created, got %d of %d", result.Created, result.Requested)
		}
		if len(creator.created) != 2 {
			t.Errorf("expected the 2 earlier payments to remain, got %d", len(creator.created))
		}
		if len(sink.severities) != 1 || sink.severities[0] != notify.SeverityError {
			t.Errorf("expected one error notification, got %v", sink.severities)
		}
	})

	t.Run("one-time saving is a no-op", func(t *testing.T) {
		creator := &fakeCreator{}
		sink := &recordingSink{}
		saving := recurringSaving("2025-01-01", 3)
		saving.SavingType = client.SavingTypeOneTime
		result, err := NewGenerator(creator, sink).Run(context.Background(), saving)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Requested != 0 || len(creator.created) != 0 {
			t.Errorf("expected nothing created, got %+v", result)
		}
		if len(sink.severities) != 0 {
			t.Errorf("expected no notifications, got %v", sink.messages)
		}
	})
}
