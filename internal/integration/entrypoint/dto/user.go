// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/usecase/user"
	"github.com/finai/backend/internal/domain/entity"
)

// UserRequest represents the body of profile create and update requests.
// Every field is optional. The camelCase aliases are accepted from older clients.
type UserRequest struct {
	Name *string `json:"name"`

	MonthlyIncome      *decimal.Decimal `json:"monthly_income"`
	MonthlyIncomeAlias *decimal.Decimal `json:"monthlyIncome"`

	MonthlyExpenses      *decimal.Decimal `json:"monthly_expenses"`
	TotalExpenses        *decimal.Decimal `json:"total_expenses"`
	TotalExpensesAlias   *decimal.Decimal `json:"totalExpenses"`
	MonthlyExpensesAlias *decimal.Decimal `json:"monthlyExpenses"`

	MonthlySavingsGoal      *decimal.Decimal `json:"monthly_savings_goal"`
	MonthlySavingsGoalAlias *decimal.Decimal `json:"monthlySavingsGoal"`

	Expenses          map[string]decimal.Decimal `json:"expenses"`
	ExpensesBreakdown map[string]decimal.Decimal `json:"expenses_breakdown"`

	RiskProfile      *string `json:"risk_profile"`
	RiskProfileAlias *string `json:"riskProfile"`

	EmergencyFund      *decimal.Decimal `json:"emergency_fund"`
	EmergencyFundAlias *decimal.Decimal `json:"emergencyFund"`

	FinancialGoal      *string `json:"financial_goal"`
	FinancialGoalAlias *string `json:"financialGoal"`

	GoalAmount      *decimal.Decimal `json:"goal_amount"`
	GoalAmountAlias *decimal.Decimal `json:"goalAmount"`

	GoalMonths      *int `json:"goal_months"`
	GoalMonthsAlias *int `json:"goalMonths"`
}

func (r *UserRequest) income() *decimal.Decimal {
	return firstDecimal(r.MonthlyIncome, r.MonthlyIncomeAlias)
}

func (r *UserRequest) expenses() *decimal.Decimal {
	return firstDecimal(r.MonthlyExpenses, r.TotalExpenses, r.TotalExpensesAlias, r.MonthlyExpensesAlias)
}

func (r *UserRequest) savingsGoal() *decimal.Decimal {
	return firstDecimal(r.MonthlySavingsGoal, r.MonthlySavingsGoalAlias)
}

func (r *UserRequest) breakdown() map[string]decimal.Decimal {
	return firstMap(r.Expenses, r.ExpensesBreakdown)
}

// ToCreateInput converts the request into a create use case input.
func (r *UserRequest) ToCreateInput() user.CreateUserInput {
	input := user.CreateUserInput{
		MonthlyIncome:      valueOrZero(r.income()),
		MonthlyExpenses:    valueOrZero(r.expenses()),
		MonthlySavingsGoal: valueOrZero(r.savingsGoal()),
		ExpensesBreakdown:  r.breakdown(),
		EmergencyFund:      valueOrZero(firstDecimal(r.EmergencyFund, r.EmergencyFundAlias)),
		GoalAmount:         valueOrZero(firstDecimal(r.GoalAmount, r.GoalAmountAlias)),
	}
	if name := r.Name; name != nil {
		input.Name = *name
	}
	if risk := firstString(r.RiskProfile, r.RiskProfileAlias); risk != nil {
		input.RiskProfile = *risk
	}
	if goal := firstString(r.FinancialGoal, r.FinancialGoalAlias); goal != nil {
		input.FinancialGoal = *goal
	}
	if months := firstInt(r.GoalMonths, r.GoalMonthsAlias); months != nil {
		input.GoalMonths = *months
	}
	return input
}

// ToUpdateInput converts the request into a partial update use case input.
func (r *UserRequest) ToUpdateInput(id uuid.UUID) user.UpdateUserInput {
	return user.UpdateUserInput{
		UserID:             id,
		Name:               r.Name,
		MonthlyIncome:      r.income(),
		MonthlyExpenses:    r.expenses(),
		MonthlySavingsGoal: r.savingsGoal(),
		RiskProfile:        firstString(r.RiskProfile, r.RiskProfileAlias),
		ExpensesBreakdown:  r.breakdown(),
		EmergencyFund:      firstDecimal(r.EmergencyFund, r.EmergencyFundAlias),
		FinancialGoal:      firstString(r.FinancialGoal, r.FinancialGoalAlias),
		GoalAmount:         firstDecimal(r.GoalAmount, r.GoalAmountAlias),
		GoalMonths:         firstInt(r.GoalMonths, r.GoalMonthsAlias),
	}
}

// CreateUserResponse represents the response of profile creation.
type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
}

// UserResponse represents a user profile in API responses.
type UserResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	RiskProfile        string             `json:"risk_profile"`
	MonthlyIncome      float64            `json:"monthly_income"`
	MonthlyExpenses    float64            `json:"monthly_expenses"`
	MonthlySavings     float64            `json:"monthly_savings"`
	MonthlySavingsGoal float64            `json:"monthly_savings_goal"`
	ExpensesBreakdown  map[string]float64 `json:"expenses_breakdown"`
	EmergencyFund      float64            `json:"emergency_fund"`
	FinancialGoal      string             `json:"financial_goal"`
	GoalAmount         float64            `json:"goal_amount"`
	GoalMonths         int                `json:"goal_months"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// UpdateUserResponse represents the response of a profile update.
type UpdateUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(u *entity.User) UserResponse {
	breakdown := make(map[string]float64, len(u.ExpensesBreakdown))
	for category, amount := range u.ExpensesBreakdown {
		breakdown[category] = toFloat(amount)
	}

	return UserResponse{
		ID:                 u.ID.String(),
		Name:               u.Name,
		RiskProfile:        string(u.RiskProfile),
		MonthlyIncome:      toFloat(u.MonthlyIncome),
		MonthlyExpenses:    toFloat(u.MonthlyExpenses),
		MonthlySavings:     toFloat(u.MonthlySavings()),
		MonthlySavingsGoal: toFloat(u.MonthlySavingsGoal),
		ExpensesBreakdown:  breakdown,
		EmergencyFund:      toFloat(u.EmergencyFund),
		FinancialGoal:      u.FinancialGoal,
		GoalAmount:         toFloat(u.GoalAmount),
		GoalMonths:         u.GoalMonths,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
