package schema

import (
	"testing"

	"github.com/raghusami/personal-finance-tracker/internal/client"
)

func TestExpense_Validate(t *testing.T) {
	tests := []struct {
		name       string
		record     client.Expense
		wantFields []string
	}{
		{
			name: "valid record",
			record: client.Expense{
				Date:     "2025-06-01",
				Category: "Food",
				Amount:   120,
			},
		},
		{
			name:       "missing everything",
			record:     client.Expense{},
			wantFields: []string{"date", "category", "amount"},
		},
		{
			name: "malformed date",
			record: client.Expense{
				Date:     "01/06/2025",
				Category: "Food",
				Amount:   120,
			},
			wantFields: []string{"date"},
		},
		{
			name: "non-positive amount",
			record: client.Expense{
				Date:     "2025-06-01",
				Category: "Food",
				Amount:   0,
			},
			wantFields: []string{"amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Expense{}.Validate(tt.record)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %v", len(tt.wantFields), errs)
			}
			for _, field := range tt.wantFields {
				if errs[field] == "" {
					t.Errorf("expected an error for %s, got %v", field, errs)
				}
			}
		})
	}
}

func TestSaving_Validate(t *testing.T) {
	valid := client.Saving{
		Date:       "2025-01-31",
		Title:      "Emergency fund",
		Amount:     250,
		SavingType: client.SavingTypeOneTime,
	}

	t.Run("valid one-time saving", func(t *testing.T) {
		if errs := (Saving{}).Validate(valid); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("recurring saving needs a month count", func(t *testing.T) {
		record := valid
		record.SavingType = client.SavingTypeRecurring
		errs := Saving{}.Validate(record)
		if errs["numberOfMonths"] == "" {
			t.Errorf("expected a numberOfMonths error, got %v", errs)
		}

		record.NumberOfMonths = 12
		if errs := (Saving{}).Validate(record); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("unknown saving type is rejected", func(t *testing.T) {
		record := valid
		record.SavingType = "Yearly"
		if errs := (Saving{}).Validate(record); errs["savingType"] == "" {
			t.Errorf("expected a savingType error, got %v", errs)
		}
	})

	t.Run("optional target amount must be positive when present", func(t *testing.T) {
		record := valid
		zero := 0.0
		record.TargetAmount = &zero
		if errs := (Saving{}).Validate(record); errs["targetAmount"] == "" {
			t.Errorf("expected a targetAmount error, got %v", errs)
		}
	})
}

func TestGoal_Validate(t *testing.T) {
	valid := client.Goal{
		Name:         "House deposit",
		TargetAmount: 50000,
		TargetDate:   "2027-01-01",
		Status:       client.GoalStatusInProgress,
	}

	t.Run("valid goal", func(t *testing.T) {
		if errs := (Goal{}).Validate(valid); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("negative current amount is rejected", func(t *testing.T) {
		record := valid
		record.CurrentAmount = -1
		if errs := (Goal{}).Validate(record); errs["currentAmount"] == "" {
			t.Errorf("expected a currentAmount error, got %v", errs)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		record := valid
		record.Status = "Paused"
		if errs := (Goal{}).Validate(record); errs["status"] == "" {
			t.Errorf("expected a status error, got %v", errs)
		}
	})
}

func TestDefaults(t *testing.T) {
	t.Run("drafts carry the default currency", func(t *testing.T) {
		if got := (Income{}).Defaults().Currency; got != DefaultCurrency {
			t.Errorf("expected %s, got %s", DefaultCurrency, got)
		}
		if got := (Expense{}).Defaults().Currency; got != DefaultCurrency {
			t.Errorf("expected %s, got %s", DefaultCurrency, got)
		}
	})

	t.Run("status defaults match the entity lifecycles", func(t *testing.T) {
		if got := (SavingPayment{}).Defaults().Status; got != client.PaymentStatusPending {
			t.Errorf("expected Pending, got %s", got)
		}
		if got := (Investment{}).Defaults().Status; got != client.InvestmentStatusActive {
			t.Errorf("expected Active, got %s", got)
		}
		if got := (Goal{}).Defaults().Status; got != client.GoalStatusNotStarted {
			t.Errorf("expected Not Started, got %s", got)
		}
	})
}
