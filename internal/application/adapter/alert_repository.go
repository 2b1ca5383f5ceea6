// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/domain/entity"
)

// AlertFilter narrows an alert listing. Zero values mean no restriction.
type AlertFilter struct {
	Status entity.AlertStatus
	Limit  int
}

// AlertRepository defines the interface for alert persistence operations.
type AlertRepository interface {
	// CreateMany inserts all alerts in one transaction.
	CreateMany(ctx context.Context, alerts []*entity.Alert) error

	// FindByUserID retrieves a user's alerts, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID, filter AlertFilter) ([]*entity.Alert, error)

	// FindByIDAndUser retrieves an alert only if it belongs to the given user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Alert, error)

	// UpdateStatus persists the alert's status.
	UpdateStatus(ctx context.Context, alert *entity.Alert) error
}
