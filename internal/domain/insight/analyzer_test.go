package insight

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/domain/entity"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func hasInsight(insights []Insight, level entity.AlertLevel, fragment string) bool {
	for _, in := range insights {
		if in.Type == level && strings.Contains(in.Message, fragment) {
			return true
		}
	}
	return false
}

func TestAnalyzer_SavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   int64
		expenses int64
		wantRate string
		wantLow  bool
	}{
		{"healthy saver", 100000, 50000, "50", false},
		{"exactly twenty percent", 100000, 80000, "20", false},
		{"just under twenty percent", 100000, 80001, "19.999", true},
		{"overspending", 50000, 60000, "-20", true},
		{"no income", 0, 10000, "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(Input{MonthlyIncome: d(tt.income), MonthlyExpenses: d(tt.expenses), GoalMonths: 12})

			if got := a.SavingsRate(); !got.Equal(decimal.RequireFromString(tt.wantRate)) {
				t.Errorf("expected savings rate %s, got %s", tt.wantRate, got)
			}

			low := hasInsight(a.ExpenseInsights(), entity.AlertLevelWarning, "Low savings rate")
			if low != tt.wantLow {
				t.Errorf("expected low savings insight %v, got %v", tt.wantLow, low)
			}
		})
	}
}

func TestAnalyzer_CriticalExpenseBoundary(t *testing.T) {
	t.Run("eighty percent is not critical", func(t *testing.T) {
		insights := NewAnalyzer(Input{MonthlyIncome: d(50000), MonthlyExpenses: d(40000)}).ExpenseInsights()
		if hasInsight(insights, entity.AlertLevelCritical, "") {
			t.Error("expected no critical insight at exactly 80%")
		}
	})

	t.Run("above eighty percent is critical", func(t *testing.T) {
		insights := NewAnalyzer(Input{MonthlyIncome: d(50000), MonthlyExpenses: d(40001)}).ExpenseInsights()
		if !hasInsight(insights, entity.AlertLevelCritical, "Expenses are 80.0% of income") {
			t.Errorf("expected critical insight, got %+v", insights)
		}
	})

	t.Run("zero income does not panic", func(t *testing.T) {
		insights := NewAnalyzer(Input{MonthlyExpenses: d(1000)}).ExpenseInsights()
		if !hasInsight(insights, entity.AlertLevelCritical, "Expenses are 0.0% of income") {
			t.Errorf("expected critical insight with zero share, got %+v", insights)
		}
	})
}

func TestAnalyzer_EmergencyFund(t *testing.T) {
	t.Run("two months covered reports exact shortfall", func(t *testing.T) {
		a := NewAnalyzer(Input{MonthlyIncome: d(100000), MonthlyExpenses: d(30000), EmergencyFund: d(60000)})

		if got := a.MonthsCovered(); !got.Equal(d(2)) {
			t.Fatalf("expected 2 months covered, got %s", got)
		}

		insights := a.EmergencyFundInsights()
		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}
		if !strings.Contains(insights[0].Message, "covers only 2.0 months") {
			t.Errorf("unexpected message: %s", insights[0].Message)
		}
		if !strings.Contains(insights[0].Message, "Shortfall: ₹30,000") {
			t.Errorf("expected shortfall of 30,000, got: %s", insights[0].Message)
		}
	})

	t.Run("three months covered is enough", func(t *testing.T) {
		a := NewAnalyzer(Input{MonthlyExpenses: d(30000), EmergencyFund: d(90000)})
		if insights := a.EmergencyFundInsights(); len(insights) != 0 {
			t.Errorf("expected no insight, got %+v", insights)
		}
	})

	t.Run("no expenses counts as zero months", func(t *testing.T) {
		a := NewAnalyzer(Input{MonthlyIncome: d(1000)})
		if got := a.MonthsCovered(); !got.IsZero() {
			t.Errorf("expected 0 months, got %s", got)
		}
	})
}

func TestAnalyzer_Forecast(t *testing.T) {
	t.Run("goal within reach", func(t *testing.T) {
		a := NewAnalyzer(Input{MonthlyIncome: d(100000), MonthlyExpenses: d(60000), GoalAmount: d(400000), GoalMonths: 10})
		f := a.Forecast()
		if !f.OnTrack {
			t.Errorf("expected on track, got %+v", f)
		}
		if len(a.GoalInsights()) != 0 {
			t.Error("expected no goal insight")
		}
	})

	t.Run("goal off track", func(t *testing.T) {
		a := NewAnalyzer(Input{MonthlyIncome: d(100000), MonthlyExpenses: d(90000), GoalAmount: d(200000), GoalMonths: 12})
		f := a.Forecast()
		if f.OnTrack {
			t.Error("expected goal off track")
		}
		if !f.Shortfall.Equal(d(80000)) {
			t.Errorf("expected shortfall 80000, got %s", f.Shortfall)
		}
		if !hasInsight(a.GoalInsights(), entity.AlertLevelWarning, "Goal off track by 40.0%. Need to save ₹80,000 more.") {
			t.Errorf("unexpected goal insight: %+v", a.GoalInsights())
		}
	})

	t.Run("no goal amount counts as zero achievement", func(t *testing.T) {
		f := NewAnalyzer(Input{MonthlyIncome: d(100000), MonthlyExpenses: d(50000), GoalMonths: 12}).Forecast()
		if !f.AchievementRate.IsZero() || f.OnTrack {
			t.Errorf("expected zero achievement, got %+v", f)
		}
		if !f.Shortfall.IsZero() {
			t.Errorf("expected shortfall clamped to zero, got %s", f.Shortfall)
		}
	})
}

func TestAnalyzer_Allocation(t *testing.T) {
	a := NewAnalyzer(Input{MonthlyIncome: d(100000), MonthlyExpenses: d(60000), EmergencyFund: d(60000)})
	alloc := a.Allocation()

	if !alloc.Equity.Equal(d(60000)) || !alloc.Debt.Equal(d(30000)) || !alloc.Gold.Equal(d(10000)) {
		t.Errorf("unexpected allocation: %+v", alloc)
	}
}

func TestAnalyze_OrderAndIndependence(t *testing.T) {
	insights := Analyze(Input{
		MonthlyIncome:   d(50000),
		MonthlyExpenses: d(45000),
		GoalAmount:      d(100000),
		GoalMonths:      12,
	})

	want := []entity.AlertLevel{
		entity.AlertLevelWarning,  // low savings rate
		entity.AlertLevelCritical, // expenses above 80%
		entity.AlertLevelWarning,  // emergency fund
		entity.AlertLevelWarning,  // goal
	}

	if len(insights) != len(want) {
		t.Fatalf("expected %d insights, got %d: %+v", len(want), len(insights), insights)
	}
	for i, level := range want {
		if insights[i].Type != level {
			t.Errorf("insight %d: expected %s, got %s", i, level, insights[i].Type)
		}
	}
}
