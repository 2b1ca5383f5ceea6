// Package advisor contains the conversational finance advisor use cases.
package advisor

import (
	"context"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
)

// ChatInput represents one user chat turn.
type ChatInput struct {
	UserID  uuid.UUID
	Message string
}

// ChatOutput represents the assistant's reply.
type ChatOutput struct {
	Response string
	Status   string
}

// ChatUseCase handles a chat turn: record the message, ask the advisor, record the reply.
type ChatUseCase struct {
	userRepo adapter.UserRepository
	chatRepo adapter.ChatRepository
	advisor  *Advisor
}

// NewChatUseCase creates a new ChatUseCase instance.
func NewChatUseCase(userRepo adapter.UserRepository, chatRepo adapter.ChatRepository, advisor *Advisor) *ChatUseCase {
	return &ChatUseCase{
		userRepo: userRepo,
		chatRepo: chatRepo,
		advisor:  advisor,
	}
}

// Execute runs the chat turn. Advisor failures produce the fallback reply, never an error.
func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	user, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.chatRepo.Create(ctx, entity.NewChatMessage(user.ID, entity.ChatRoleUser, input.Message)); err != nil {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeAdvisorPersistence,
			"failed to save chat message",
			err,
		)
	}

	result := uc.advisor.Advise(ctx, user, input.Message)
	reply := result.Text()

	if err := uc.chatRepo.Create(ctx, entity.NewChatMessage(user.ID, entity.ChatRoleAssistant, reply)); err != nil {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeAdvisorPersistence,
			"failed to save chat reply",
			err,
		)
	}

	return &ChatOutput{
		Response: reply,
		Status:   result.Status,
	}, nil
}
