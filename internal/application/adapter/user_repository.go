// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/domain/entity"
)

// ProfileChange groups the rows written together when a profile is created or updated.
// Snapshot and Alerts are optional.
type ProfileChange struct {
	User     *entity.User
	Snapshot *entity.FinanceSnapshot
	Alerts   []*entity.Alert
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts the user together with its snapshot and alerts in one transaction.
	Create(ctx context.Context, change ProfileChange) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindAll retrieves every stored user, oldest first.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update saves the user together with its snapshot and alerts in one transaction.
	Update(ctx context.Context, change ProfileChange) error

	// Exists checks whether a user with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
