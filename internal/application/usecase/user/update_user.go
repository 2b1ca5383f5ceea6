// Package user contains user profile use cases.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/application/usecase/alert"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
)

// UpdateUserInput represents the input for a partial profile update.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	UserID             uuid.UUID
	Name               *string
	MonthlyIncome      *decimal.Decimal
	MonthlyExpenses    *decimal.Decimal
	MonthlySavingsGoal *decimal.Decimal
	RiskProfile        *string
	ExpensesBreakdown  map[string]decimal.Decimal // Optional: nil keeps the stored breakdown
	EmergencyFund      *decimal.Decimal
	FinancialGoal      *string
	GoalAmount         *decimal.Decimal
	GoalMonths         *int
}

// UpdateUserOutput represents the output of a profile update.
type UpdateUserOutput struct {
	User     *entity.User
	Snapshot *entity.FinanceSnapshot
	Alerts   []*entity.Alert
}

// UpdateUserUseCase handles partial profile updates.
type UpdateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
	}
}

// Execute applies the provided fields, then stores the user, a snapshot when income or
// expenses changed, and the threshold alert in one transaction.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	financesChanged := false

	if input.Name != nil {
		user.Name = normalizeName(*input.Name)
	}
	if input.MonthlyIncome != nil {
		income := entity.NonNegative(*input.MonthlyIncome)
		financesChanged = financesChanged || !income.Equal(user.MonthlyIncome)
		user.MonthlyIncome = income
	}
	if input.MonthlyExpenses != nil {
		expenses := entity.NonNegative(*input.MonthlyExpenses)
		financesChanged = financesChanged || !expenses.Equal(user.MonthlyExpenses)
		user.MonthlyExpenses = expenses
	}
	if input.MonthlySavingsGoal != nil {
		user.MonthlySavingsGoal = entity.NonNegative(*input.MonthlySavingsGoal)
	}
	if input.RiskProfile != nil {
		user.RiskProfile = entity.ParseRiskProfile(*input.RiskProfile)
	}
	if input.ExpensesBreakdown != nil {
		user.ExpensesBreakdown = normalizeBreakdown(input.ExpensesBreakdown)
	}
	if input.EmergencyFund != nil {
		user.EmergencyFund = entity.NonNegative(*input.EmergencyFund)
	}
	if input.FinancialGoal != nil {
		user.FinancialGoal = *input.FinancialGoal
	}
	if input.GoalAmount != nil {
		user.GoalAmount = entity.NonNegative(*input.GoalAmount)
	}
	if input.GoalMonths != nil {
		user.GoalMonths = normalizeGoalMonths(*input.GoalMonths)
	}

	user.UpdatedAt = time.Now().UTC()

	change := adapter.ProfileChange{
		User:   user,
		Alerts: alert.Build(user, alert.Options{}),
	}
	if financesChanged {
		change.Snapshot = entity.NewFinanceSnapshot(user)
	}

	if err := uc.userRepo.Update(ctx, change); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserPersistence,
			"failed to update user",
			err,
		)
	}

	return &UpdateUserOutput{
		User:     user,
		Snapshot: change.Snapshot,
		Alerts:   change.Alerts,
	}, nil
}
