package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/integration/persistence"
	"github.com/finai/backend/test/integration/mock"
)

func TestListFinancesUseCase(t *testing.T) {
	ctx := context.Background()
	db := mock.NewMemoryDB(t)
	users := persistence.NewUserRepository(db)
	finances := persistence.NewFinanceRepository(db)

	user := entity.NewUser("Kiran")
	user.MonthlyIncome = decimal.NewFromInt(100000)
	user.MonthlyExpenses = decimal.NewFromInt(40000)
	first := entity.NewFinanceSnapshot(user)
	first.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := users.Create(ctx, adapter.ProfileChange{User: user, Snapshot: first}); err != nil {
		t.Fatalf("failed to store user: %v", err)
	}

	user.MonthlyExpenses = decimal.NewFromInt(50000)
	second := entity.NewFinanceSnapshot(user)
	second.CreatedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	if err := finances.Create(ctx, second); err != nil {
		t.Fatalf("failed to store snapshot: %v", err)
	}

	uc := NewListFinancesUseCase(finances, users)

	t.Run("history with spike", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListFinancesInput{UserID: user.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Snapshots) != 2 || out.Snapshots[0].ID != first.ID {
			t.Fatalf("expected 2 snapshots oldest first, got %+v", out.Snapshots)
		}
		if !out.Trend.SpikeDetected {
			t.Error("expected 25% increase to be a spike")
		}
	})

	t.Run("limit keeps the latest", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListFinancesInput{UserID: user.ID, Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Snapshots) != 1 || out.Snapshots[0].ID != second.ID {
			t.Errorf("expected latest snapshot only, got %+v", out.Snapshots)
		}
		if out.Trend.SpikeDetected {
			t.Error("expected no trend with one snapshot")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListFinancesInput{UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
