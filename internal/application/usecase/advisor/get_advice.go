// Package advisor contains the conversational finance advisor use cases.
package advisor

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
)

// GetAdviceInput represents a one-off advice request.
type GetAdviceInput struct {
	UserID        uuid.UUID
	EmergencyFund *decimal.Decimal // Optional: overrides the stored fund for this request only
}

// GetAdviceUseCase returns advice for the stored profile without touching the chat history.
type GetAdviceUseCase struct {
	userRepo adapter.UserRepository
	advisor  *Advisor
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance.
func NewGetAdviceUseCase(userRepo adapter.UserRepository, advisor *Advisor) *GetAdviceUseCase {
	return &GetAdviceUseCase{
		userRepo: userRepo,
		advisor:  advisor,
	}
}

// Execute returns the advisor result for the user.
func (uc *GetAdviceUseCase) Execute(ctx context.Context, input GetAdviceInput) (*Result, error) {
	user, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.EmergencyFund != nil {
		user.EmergencyFund = entity.NonNegative(*input.EmergencyFund)
	}

	return uc.advisor.Advise(ctx, user, DefaultMessage), nil
}
