// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	"github.com/finai/backend/internal/integration/persistence/model"
)

// chatRepository implements the adapter.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat history repository instance.
func NewChatRepository(db *gorm.DB) adapter.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// Create appends a message to the user's history.
func (r *chatRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	return r.db.WithContext(ctx).Create(model.ChatMessageFromEntity(message)).Error
}

// FindByUserID retrieves the latest messages of a user, oldest first.
func (r *chatRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ChatMessage, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messageModels []model.ChatMessageModel
	if err := query.Find(&messageModels).Error; err != nil {
		return nil, err
	}

	messages := make([]*entity.ChatMessage, len(messageModels))
	for i := range messageModels {
		messages[len(messageModels)-1-i] = messageModels[i].ToEntity()
	}
	return messages, nil
}
