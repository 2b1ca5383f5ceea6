package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/test/integration/mock"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(mock.NewMemoryDB(t))

	user := entity.NewUser("Dev")
	user.MonthlyIncome = decimal.RequireFromString("85000.50")
	user.ExpensesBreakdown = map[string]decimal.Decimal{"rent": decimal.NewFromInt(20000)}
	user.FinancialGoal = "house"

	if err := repo.Create(ctx, adapter.ProfileChange{User: user}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.MonthlyIncome.Equal(user.MonthlyIncome) {
		t.Errorf("expected income %s, got %s", user.MonthlyIncome, stored.MonthlyIncome)
	}
	if !stored.ExpensesBreakdown["rent"].Equal(decimal.NewFromInt(20000)) {
		t.Errorf("unexpected breakdown %v", stored.ExpensesBreakdown)
	}
	if stored.FinancialGoal != "house" {
		t.Errorf("expected goal text, got %q", stored.FinancialGoal)
	}

	exists, err := repo.Exists(ctx, user.ID)
	if err != nil || !exists {
		t.Errorf("expected user to exist, got %v %v", exists, err)
	}

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_CreateIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := mock.NewMemoryDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("Atomic")
	dup := entity.NewAlert(user.ID, "first", entity.AlertLevelInfo)
	clash := entity.NewAlert(user.ID, "second", entity.AlertLevelInfo)
	clash.ID = dup.ID

	err := repo.Create(ctx, adapter.ProfileChange{
		User:     user,
		Snapshot: entity.NewFinanceSnapshot(user),
		Alerts:   []*entity.Alert{dup, clash},
	})
	if err == nil {
		t.Fatal("expected duplicate alert id to fail")
	}

	exists, _ := repo.Exists(ctx, user.ID)
	if exists {
		t.Error("expected user insert to be rolled back")
	}

	snapshots, _ := NewFinanceRepository(db).FindByUserID(ctx, user.ID, 0)
	if len(snapshots) != 0 {
		t.Errorf("expected snapshot insert to be rolled back, got %d", len(snapshots))
	}
}

func TestUserRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(mock.NewMemoryDB(t))

	for _, name := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, adapter.ProfileChange{User: entity.NewUser(name)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	users, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("expected 3 users, got %d", len(users))
	}
}
