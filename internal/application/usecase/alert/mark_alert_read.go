// Package alert contains alert-related use cases.
package alert

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
)

// MarkAlertReadInput represents the input for marking an alert as read.
type MarkAlertReadInput struct {
	UserID  uuid.UUID
	AlertID uuid.UUID
}

// MarkAlertReadOutput represents the output of marking an alert as read.
type MarkAlertReadOutput struct {
	Alert *entity.Alert
}

// MarkAlertReadUseCase handles flipping an alert to read.
type MarkAlertReadUseCase struct {
	alertRepo adapter.AlertRepository
}

// NewMarkAlertReadUseCase creates a new MarkAlertReadUseCase instance.
func NewMarkAlertReadUseCase(alertRepo adapter.AlertRepository) *MarkAlertReadUseCase {
	return &MarkAlertReadUseCase{
		alertRepo: alertRepo,
	}
}

// Execute marks the alert as read. Marking a read alert again succeeds without a write.
func (uc *MarkAlertReadUseCase) Execute(ctx context.Context, input MarkAlertReadInput) (*MarkAlertReadOutput, error) {
	alert, err := uc.alertRepo.FindByIDAndUser(ctx, input.AlertID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAlertNotFound) {
			return nil, domainerror.NewAlertError(
				domainerror.ErrCodeAlertNotFound,
				"alert not found",
				domainerror.ErrAlertNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find alert: %w", err)
	}

	if alert.Status == entity.AlertStatusRead {
		return &MarkAlertReadOutput{Alert: alert}, nil
	}

	alert.MarkRead()
	if err := uc.alertRepo.UpdateStatus(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}

	return &MarkAlertReadOutput{
		Alert: alert,
	}, nil
}
