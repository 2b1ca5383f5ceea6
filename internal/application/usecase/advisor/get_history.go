// Package advisor contains the conversational finance advisor use cases.
package advisor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
)

// DefaultHistoryLimit bounds the transcript returned when no limit is given.
const DefaultHistoryLimit = 50

// GetHistoryInput represents the input for reading the chat transcript.
type GetHistoryInput struct {
	UserID uuid.UUID
	Limit  int
}

// GetHistoryOutput represents the chat transcript, oldest first.
type GetHistoryOutput struct {
	Messages []*entity.ChatMessage
}

// GetHistoryUseCase reads a user's chat transcript.
type GetHistoryUseCase struct {
	userRepo adapter.UserRepository
	chatRepo adapter.ChatRepository
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(userRepo adapter.UserRepository, chatRepo adapter.ChatRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		userRepo: userRepo,
		chatRepo: chatRepo,
	}
}

// Execute returns the latest messages of the transcript.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	if _, err := findUser(ctx, uc.userRepo, input.UserID); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	messages, err := uc.chatRepo.FindByUserID(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}

	return &GetHistoryOutput{
		Messages: messages,
	}, nil
}
