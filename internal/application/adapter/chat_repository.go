// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/domain/entity"
)

// ChatRepository defines the interface for chat history persistence operations.
type ChatRepository interface {
	// Create appends a message to the user's history.
	Create(ctx context.Context, message *entity.ChatMessage) error

	// FindByUserID retrieves the latest messages of a user, oldest first.
	// A non-positive limit returns the full history.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ChatMessage, error)
}
