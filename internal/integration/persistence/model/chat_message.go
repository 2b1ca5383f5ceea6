// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/domain/entity"
)

// ChatMessageModel represents the chat_history table in the database.
type ChatMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_user_created"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_chat_user_created"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ChatMessageModel.
func (ChatMessageModel) TableName() string {
	return "chat_history"
}

// ToEntity converts a ChatMessageModel to a domain ChatMessage entity.
func (m *ChatMessageModel) ToEntity() *entity.ChatMessage {
	return &entity.ChatMessage{
		ID:        m.ID,
		UserID:    m.UserID,
		Role:      entity.ChatRole(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// ChatMessageFromEntity creates a ChatMessageModel from a domain ChatMessage entity.
func ChatMessageFromEntity(message *entity.ChatMessage) *ChatMessageModel {
	return &ChatMessageModel{
		ID:        message.ID,
		UserID:    message.UserID,
		Role:      string(message.Role),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}
