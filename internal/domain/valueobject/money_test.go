package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "₹0"},
		{"small", decimal.NewFromInt(950), "₹950"},
		{"thousands", decimal.NewFromInt(71000), "₹71,000"},
		{"millions", decimal.NewFromInt(1234567), "₹1,234,567"},
		{"rounds fraction", decimal.RequireFromString("1499.6"), "₹1,500"},
		{"negative", decimal.NewFromInt(-5000), "₹-5,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount); got != tt.want {
				t.Errorf("FormatCurrency(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	t.Run("regular ratio", func(t *testing.T) {
		got := Percent(decimal.NewFromInt(71000), decimal.NewFromInt(100000))
		if !got.Equal(decimal.NewFromInt(71)) {
			t.Errorf("expected 71, got %s", got)
		}
	})

	t.Run("zero whole yields zero", func(t *testing.T) {
		got := Percent(decimal.NewFromInt(10), decimal.Zero)
		if !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})

	t.Run("formatting keeps one decimal", func(t *testing.T) {
		got := FormatPercent(Percent(decimal.NewFromInt(1), decimal.NewFromInt(3)))
		if got != "33.3" {
			t.Errorf("expected 33.3, got %s", got)
		}
	})
}
