package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
	"github.com/raghusami/personal-finance-tracker/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.SavingModel{},
		&model.SavingPaymentModel{},
		&model.IncomeModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

func TestSavingRepository_DeleteWithPayments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	userID := uuid.New()

	savingRepo := NewSavingRepository(db)
	paymentRepo := NewSavingPaymentRepository(db)

	saving := entity.NewSaving(userID, mustDate(t, "2025-01-31"), "Emergency fund",
		decimal.NewFromInt(250), "INR", entity.SavingTypeRecurring, "SIP")
	saving.NumberOfMonths = 3
	if err := savingRepo.Create(ctx, saving); err != nil {
		t.Fatalf("failed to create saving: %v", err)
	}

	for i := 0; i < 3; i++ {
		payment := entity.NewSavingPayment(userID, saving.ID,
			mustDate(t, "2025-01-31").AddDate(0, i, 0), decimal.NewFromInt(250),
			entity.PaymentStatusPending, "Bank Transfer", "")
		if err := paymentRepo.Create(ctx, payment); err != nil {
			t.Fatalf("failed to create payment %d: %v", i, err)
		}
	}

	// An unrelated saving's payment must survive the cascade.
	other := entity.NewSaving(userID, mustDate(t, "2025-02-01"), "Vacation",
		decimal.NewFromInt(100), "INR", entity.SavingTypeOneTime, "Cash")
	if err := savingRepo.Create(ctx, other); err != nil {
		t.Fatalf("failed to create other saving: %v", err)
	}
	otherPayment := entity.NewSavingPayment(userID, other.ID,
		mustDate(t, "2025-02-01"), decimal.NewFromInt(100),
		entity.PaymentStatusCompleted, "UPI", "")
	if err := paymentRepo.Create(ctx, otherPayment); err != nil {
		t.Fatalf("failed to create other payment: %v", err)
	}

	if err := savingRepo.DeleteWithPayments(ctx, saving.ID); err != nil {
		t.Fatalf("cascade delete failed: %v", err)
	}

	t.Run("saving is gone", func(t *testing.T) {
		_, err := savingRepo.FindByID(ctx, saving.ID)
		if !errors.Is(err, domainerror.ErrSavingNotFound) {
			t.Errorf("expected ErrSavingNotFound, got %v", err)
		}
	})

	t.Run("its payments are gone", func(t *testing.T) {
		payments, err := paymentRepo.FindBySavingID(ctx, saving.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 0 {
			t.Errorf("expected 0 payments, got %d", len(payments))
		}
	})

	t.Run("unrelated payments survive", func(t *testing.T) {
		payments, err := paymentRepo.FindBySavingID(ctx, other.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 {
			t.Errorf("expected 1 payment, got %d", len(payments))
		}
	})
}

func TestSavingRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSavingRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrSavingNotFound) {
		t.Errorf("expected ErrSavingNotFound, got %v", err)
	}
}

func TestIncomeRepository_OrderedByDateDescending(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	userID := uuid.New()
	repo := NewIncomeRepository(db)

	dates := []string{"2025-02-01", "2025-06-01", "2025-04-01"}
	for _, d := range dates {
		income := entity.NewIncome(userID, mustDate(t, d), "Salary", "Monthly",
			decimal.NewFromInt(5000), "INR", "")
		if err := repo.Create(ctx, income); err != nil {
			t.Fatalf("failed to create income: %v", err)
		}
	}

	incomes, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(incomes) != 3 {
		t.Fatalf("expected 3 records, got %d", len(incomes))
	}

	want := []string{"2025-06-01", "2025-04-01", "2025-02-01"}
	for i, income := range incomes {
		if got := income.IncomeDate.Format("2006-01-02"); got != want[i] {
			t.Errorf("record %d: expected %s, got %s", i, want[i], got)
		}
	}

	t.Run("other users see nothing", func(t *testing.T) {
		incomes, err := repo.FindByUserID(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(incomes) != 0 {
			t.Errorf("expected 0 records, got %d", len(incomes))
		}
	})
}
