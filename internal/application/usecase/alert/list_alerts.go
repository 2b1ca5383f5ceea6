// Package alert contains alert-related use cases.
package alert

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
)

// ListAlertsInput represents the input for listing alerts.
type ListAlertsInput struct {
	UserID uuid.UUID
	Status string // Optional: unread or read
	Limit  int    // Optional: 0 means no limit
}

// ListAlertsOutput represents the output of listing alerts.
type ListAlertsOutput struct {
	Alerts []*entity.Alert
}

// ListAlertsUseCase handles listing a user's alerts.
type ListAlertsUseCase struct {
	alertRepo adapter.AlertRepository
	userRepo  adapter.UserRepository
}

// NewListAlertsUseCase creates a new ListAlertsUseCase instance.
func NewListAlertsUseCase(alertRepo adapter.AlertRepository, userRepo adapter.UserRepository) *ListAlertsUseCase {
	return &ListAlertsUseCase{
		alertRepo: alertRepo,
		userRepo:  userRepo,
	}
}

// Execute returns the user's alerts, newest first.
func (uc *ListAlertsUseCase) Execute(ctx context.Context, input ListAlertsInput) (*ListAlertsOutput, error) {
	filter := adapter.AlertFilter{Limit: input.Limit}
	if input.Status != "" {
		status := entity.AlertStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerror.NewAlertError(
				domainerror.ErrCodeInvalidAlertStatus,
				"status must be 'unread' or 'read'",
				domainerror.ErrInvalidAlertStatus,
			)
		}
		filter.Status = status
	}
	if filter.Limit < 0 {
		filter.Limit = 0
	}

	exists, err := uc.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewAlertError(
			domainerror.ErrCodeAlertUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	alerts, err := uc.alertRepo.FindByUserID(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return &ListAlertsOutput{
		Alerts: alerts,
	}, nil
}
