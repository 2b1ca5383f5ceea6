// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finai/backend/internal/application/usecase/finance"
)

// SnapshotResponse represents one finance snapshot.
type SnapshotResponse struct {
	ID        string    `json:"id"`
	Income    float64   `json:"income"`
	Expenses  float64   `json:"expenses"`
	Savings   float64   `json:"savings"`
	CreatedAt time.Time `json:"created_at"`
}

// TrendResponse represents the expense trend between the last two snapshots.
type TrendResponse struct {
	SpikeDetected bool    `json:"spike_detected"`
	ChangePercent float64 `json:"change_percent"`
	Message       string  `json:"message,omitempty"`
}

// FinanceHistoryResponse represents a user's snapshot history.
type FinanceHistoryResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
	Trend     TrendResponse      `json:"trend"`
}

// ToFinanceHistoryResponse converts the use case output to its DTO.
func ToFinanceHistoryResponse(out *finance.ListFinancesOutput) FinanceHistoryResponse {
	snapshots := make([]SnapshotResponse, len(out.Snapshots))
	for i, s := range out.Snapshots {
		snapshots[i] = SnapshotResponse{
			ID:        s.ID.String(),
			Income:    toFloat(s.Income),
			Expenses:  toFloat(s.Expenses),
			Savings:   toFloat(s.Savings),
			CreatedAt: s.CreatedAt,
		}
	}

	return FinanceHistoryResponse{
		Snapshots: snapshots,
		Trend: TrendResponse{
			SpikeDetected: out.Trend.SpikeDetected,
			ChangePercent: toFloat(out.Trend.ChangePercent.Round(1)),
			Message:       out.Trend.Message,
		},
	}
}
