package insight

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExpenseTrend(t *testing.T) {
	tests := []struct {
		name      string
		expenses  []int64
		wantSpike bool
		wantMsg   string
	}{
		{"single point", []int64{1000}, false, ""},
		{"small change", []int64{40000, 44000}, false, ""},
		{"exactly fifteen percent", []int64{40000, 46000}, false, ""},
		{"increase spike", []int64{30000, 40000, 50000}, true, "Expense spike detected: +25.0% (₹50,000)"},
		{"decrease spike", []int64{50000, 40000}, true, "Expense spike detected: -20.0% (₹40,000)"},
		{"previous zero", []int64{0, 40000}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]decimal.Decimal, len(tt.expenses))
			for i, v := range tt.expenses {
				values[i] = decimal.NewFromInt(v)
			}

			got := ExpenseTrend(values)
			if got.SpikeDetected != tt.wantSpike {
				t.Errorf("expected spike %v, got %v", tt.wantSpike, got.SpikeDetected)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, got.Message)
			}
		})
	}
}
