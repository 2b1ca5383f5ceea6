// Package user contains user profile use cases.
package user

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/application/usecase/alert"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
)

// CreateUserInput represents the input for user creation.
// Zero values stand for missing fields.
type CreateUserInput struct {
	Name               string
	MonthlyIncome      decimal.Decimal
	MonthlyExpenses    decimal.Decimal
	MonthlySavingsGoal decimal.Decimal
	RiskProfile        string
	ExpensesBreakdown  map[string]decimal.Decimal
	EmergencyFund      decimal.Decimal
	FinancialGoal      string
	GoalAmount         decimal.Decimal
	GoalMonths         int
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User   *entity.User
	Alerts []*entity.Alert
}

// CreateUserUseCase handles user creation logic.
type CreateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(userRepo adapter.UserRepository) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
	}
}

// Execute stores the user, an initial finance snapshot and the threshold alert in one transaction.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	user := entity.NewUser(normalizeName(input.Name))
	user.MonthlyIncome = entity.NonNegative(input.MonthlyIncome)
	user.MonthlyExpenses = entity.NonNegative(input.MonthlyExpenses)
	user.MonthlySavingsGoal = entity.NonNegative(input.MonthlySavingsGoal)
	user.RiskProfile = entity.ParseRiskProfile(input.RiskProfile)
	user.ExpensesBreakdown = normalizeBreakdown(input.ExpensesBreakdown)
	user.EmergencyFund = entity.NonNegative(input.EmergencyFund)
	user.FinancialGoal = input.FinancialGoal
	user.GoalAmount = entity.NonNegative(input.GoalAmount)
	user.GoalMonths = normalizeGoalMonths(input.GoalMonths)

	alerts := alert.Build(user, alert.Options{})

	change := adapter.ProfileChange{
		User:     user,
		Snapshot: entity.NewFinanceSnapshot(user),
		Alerts:   alerts,
	}
	if err := uc.userRepo.Create(ctx, change); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserPersistence,
			"failed to save user",
			err,
		)
	}

	return &CreateUserOutput{
		User:   user,
		Alerts: alerts,
	}, nil
}
