// Package finance contains finance snapshot use cases.
package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/domain/insight"
)

// DefaultSnapshotLimit bounds the history returned when no limit is given.
const DefaultSnapshotLimit = 12

// ListFinancesInput represents the input for listing finance snapshots.
type ListFinancesInput struct {
	UserID uuid.UUID
	Limit  int
}

// ListFinancesOutput represents the output of listing finance snapshots.
type ListFinancesOutput struct {
	Snapshots []*entity.FinanceSnapshot
	Trend     insight.Trend
}

// ListFinancesUseCase returns a user's snapshot history with expense trend detection.
type ListFinancesUseCase struct {
	financeRepo adapter.FinanceRepository
	userRepo    adapter.UserRepository
}

// NewListFinancesUseCase creates a new ListFinancesUseCase instance.
func NewListFinancesUseCase(financeRepo adapter.FinanceRepository, userRepo adapter.UserRepository) *ListFinancesUseCase {
	return &ListFinancesUseCase{
		financeRepo: financeRepo,
		userRepo:    userRepo,
	}
}

// Execute returns the latest snapshots, oldest first, and the trend between the last two.
func (uc *ListFinancesUseCase) Execute(ctx context.Context, input ListFinancesInput) (*ListFinancesOutput, error) {
	exists, err := uc.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}

	snapshots, err := uc.financeRepo.FindByUserID(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	expenses := make([]decimal.Decimal, len(snapshots))
	for i, s := range snapshots {
		expenses[i] = s.Expenses
	}

	return &ListFinancesOutput{
		Snapshots: snapshots,
		Trend:     insight.ExpenseTrend(expenses),
	}, nil
}
