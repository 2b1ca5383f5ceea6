// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/finai/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name               string            `gorm:"type:varchar(100);not null"`
	MonthlyIncome      decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0"`
	MonthlyExpenses    decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0"`
	MonthlySavingsGoal decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0"`
	RiskProfile        string            `gorm:"type:varchar(20);not null;default:'medium'"`
	ExpensesBreakdown  datatypes.JSONMap `gorm:"not null"`
	EmergencyFund      decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0"`
	FinancialGoal      string            `gorm:"type:varchar(200);not null;default:''"`
	GoalAmount         decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0"`
	GoalMonths         int               `gorm:"not null;default:12"`
	CreatedAt          time.Time         `gorm:"not null;index"`
	UpdatedAt          time.Time         `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                 m.ID,
		Name:               m.Name,
		MonthlyIncome:      m.MonthlyIncome,
		MonthlyExpenses:    m.MonthlyExpenses,
		MonthlySavingsGoal: m.MonthlySavingsGoal,
		RiskProfile:        entity.ParseRiskProfile(m.RiskProfile),
		ExpensesBreakdown:  breakdownFromJSON(m.ExpensesBreakdown),
		EmergencyFund:      m.EmergencyFund,
		FinancialGoal:      m.FinancialGoal,
		GoalAmount:         m.GoalAmount,
		GoalMonths:         m.GoalMonths,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                 user.ID,
		Name:               user.Name,
		MonthlyIncome:      user.MonthlyIncome,
		MonthlyExpenses:    user.MonthlyExpenses,
		MonthlySavingsGoal: user.MonthlySavingsGoal,
		RiskProfile:        string(user.RiskProfile),
		ExpensesBreakdown:  breakdownToJSON(user.ExpensesBreakdown),
		EmergencyFund:      user.EmergencyFund,
		FinancialGoal:      user.FinancialGoal,
		GoalAmount:         user.GoalAmount,
		GoalMonths:         user.GoalMonths,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

func breakdownToJSON(breakdown map[string]decimal.Decimal) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(breakdown))
	for category, amount := range breakdown {
		out[category] = amount.InexactFloat64()
	}
	return out
}

// breakdownFromJSON accepts numeric and string amounts; anything else is dropped.
// Scanned columns decode numbers as json.Number.
func breakdownFromJSON(raw datatypes.JSONMap) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(raw))
	for category, value := range raw {
		switch v := value.(type) {
		case json.Number:
			if amount, err := decimal.NewFromString(v.String()); err == nil {
				out[category] = amount
			}
		case float64:
			out[category] = decimal.NewFromFloat(v)
		case string:
			if amount, err := decimal.NewFromString(v); err == nil {
				out[category] = amount
			}
		}
	}
	return out
}
