package job

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/application/usecase/alert"
	"github.com/finai/backend/internal/domain/entity"
	"github.com/finai/backend/internal/integration/persistence"
	"github.com/finai/backend/test/integration/mock"
)

var runAt = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	users  adapter.UserRepository
	alerts adapter.AlertRepository
}

func newFixture(t *testing.T) *fixture {
	db := mock.NewMemoryDB(t)
	return &fixture{
		users:  persistence.NewUserRepository(db),
		alerts: persistence.NewAlertRepository(db),
	}
}

func (f *fixture) addUser(t *testing.T, name string, income, expenses int64) *entity.User {
	t.Helper()
	user := entity.NewUser(name)
	user.MonthlyIncome = decimal.NewFromInt(income)
	user.MonthlyExpenses = decimal.NewFromInt(expenses)
	if err := f.users.Create(context.Background(), adapter.ProfileChange{User: user}); err != nil {
		t.Fatalf("failed to store user: %v", err)
	}
	return user
}

// flakyAlertRepository fails writes for one user.
type flakyAlertRepository struct {
	adapter.AlertRepository
	failFor uuid.UUID
}

func (r *flakyAlertRepository) CreateMany(ctx context.Context, alerts []*entity.Alert) error {
	if len(alerts) > 0 && alerts[0].UserID == r.failFor {
		return errors.New("write failed")
	}
	return r.AlertRepository.CreateMany(ctx, alerts)
}

func TestDailyCheckJob(t *testing.T) {
	ctx := context.Background()

	t.Run("eighty percent user gets warning and no critical insight", func(t *testing.T) {
		f := newFixture(t)
		user := f.addUser(t, "Edge", 50000, 40000)

		summary, err := NewDailyCheckJob(f.users, alert.NewGenerator(f.alerts)).Run(ctx, runAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Users != 1 || summary.Failed != 0 {
			t.Errorf("unexpected summary %+v", summary)
		}

		alerts, _ := f.alerts.FindByUserID(ctx, user.ID, adapter.AlertFilter{})
		warnings := 0
		for _, a := range alerts {
			if a.Level == entity.AlertLevelCritical {
				t.Errorf("unexpected critical alert %q", a.Message)
			}
			if strings.HasPrefix(a.Message, "Warning: Your expenses") {
				warnings++
			}
		}
		if warnings != 1 {
			t.Errorf("expected one threshold warning, got %d", warnings)
		}
	})

	t.Run("one failing user does not abort the run", func(t *testing.T) {
		f := newFixture(t)
		broken := f.addUser(t, "Broken", 100000, 90000)
		healthy := f.addUser(t, "Healthy", 100000, 90000)

		repo := &flakyAlertRepository{AlertRepository: f.alerts, failFor: broken.ID}
		summary, err := NewDailyCheckJob(f.users, alert.NewGenerator(repo)).Run(ctx, runAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Failed != 1 {
			t.Errorf("expected 1 failure, got %d", summary.Failed)
		}

		alerts, _ := f.alerts.FindByUserID(ctx, healthy.ID, adapter.AlertFilter{})
		if len(alerts) == 0 {
			t.Error("expected alerts for the healthy user")
		}
	})
}

func TestWeeklyMonitorJob(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	saver := f.addUser(t, "Saver", 100000, 65000)
	spender := f.addUser(t, "Spender", 50000, 60000)

	if _, err := NewWeeklyMonitorJob(f.users, f.alerts).Run(ctx, runAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alerts, _ := f.alerts.FindByUserID(ctx, saver.ID, adapter.AlertFilter{})
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Level != entity.AlertLevelSuccess {
		t.Errorf("expected success level, got %s", alerts[0].Level)
	}
	if alerts[0].Message != "Great! You saved ₹35,000 this week. Keep up the momentum!" {
		t.Errorf("unexpected message %q", alerts[0].Message)
	}

	none, _ := f.alerts.FindByUserID(ctx, spender.ID, adapter.AlertFilter{})
	if len(none) != 0 {
		t.Errorf("expected no alert for negative savings, got %d", len(none))
	}
}

type memoryReportWriter struct {
	reports []adapter.MonthlyReport
}

func (w *memoryReportWriter) Append(_ context.Context, _ time.Time, report adapter.MonthlyReport) error {
	w.reports = append(w.reports, report)
	return nil
}

func TestMonthlyReportJob(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.addUser(t, "Report", 120000, 70000)

	writer := &memoryReportWriter{}
	summary, err := NewMonthlyReportJob(f.users, writer).Run(ctx, runAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Users != 1 || len(writer.reports) != 1 {
		t.Fatalf("expected one report for one user, got %+v", summary)
	}

	entry, ok := writer.reports[0]["user_"+user.ID.String()]
	if !ok {
		t.Fatal("expected report keyed by user id")
	}
	if entry.MonthlySavings != "₹50,000" {
		t.Errorf("expected ₹50,000, got %s", entry.MonthlySavings)
	}
	if entry.Timestamp != "2025-06-02T09:00:00Z" {
		t.Errorf("unexpected timestamp %s", entry.Timestamp)
	}
	if entry.RiskProfile != "medium" {
		t.Errorf("unexpected risk profile %s", entry.RiskProfile)
	}
}
