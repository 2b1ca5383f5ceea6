package insight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/domain/valueobject"
)

// SpikeChangePercent is the absolute month-over-month expense change that counts as a spike.
var SpikeChangePercent = decimal.NewFromInt(15)

// Trend compares the two most recent expense figures.
type Trend struct {
	SpikeDetected bool            `json:"spike_detected"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	Message       string          `json:"message,omitempty"`
}

// ExpenseTrend inspects expenses ordered oldest first. Fewer than two points yield no spike,
// and a zero previous value counts as no change.
func ExpenseTrend(expenses []decimal.Decimal) Trend {
	if len(expenses) < 2 {
		return Trend{ChangePercent: decimal.Zero}
	}

	latest := expenses[len(expenses)-1]
	previous := expenses[len(expenses)-2]
	change := valueobject.Percent(latest.Sub(previous), previous)

	if change.Abs().LessThanOrEqual(SpikeChangePercent) {
		return Trend{ChangePercent: change}
	}

	sign := ""
	if change.IsPositive() {
		sign = "+"
	}
	return Trend{
		SpikeDetected: true,
		ChangePercent: change,
		Message: fmt.Sprintf("Expense spike detected: %s%s%% (%s)",
			sign, change.StringFixed(1), valueobject.FormatCurrency(latest)),
	}
}
