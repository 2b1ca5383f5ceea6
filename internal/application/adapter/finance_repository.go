// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/domain/entity"
)

// FinanceRepository defines the interface for finance snapshot persistence operations.
type FinanceRepository interface {
	// Create inserts a snapshot.
	Create(ctx context.Context, snapshot *entity.FinanceSnapshot) error

	// FindByUserID retrieves the latest snapshots of a user, oldest first.
	// A non-positive limit returns all snapshots.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.FinanceSnapshot, error)
}
