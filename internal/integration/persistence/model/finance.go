// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/domain/entity"
)

// FinanceModel represents the finances table in the database.
type FinanceModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_finances_user_created"`
	Income    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Expenses  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Savings   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null;index:idx_finances_user_created"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the FinanceModel.
func (FinanceModel) TableName() string {
	return "finances"
}

// ToEntity converts a FinanceModel to a domain FinanceSnapshot entity.
func (m *FinanceModel) ToEntity() *entity.FinanceSnapshot {
	return &entity.FinanceSnapshot{
		ID:        m.ID,
		UserID:    m.UserID,
		Income:    m.Income,
		Expenses:  m.Expenses,
		Savings:   m.Savings,
		CreatedAt: m.CreatedAt,
	}
}

// FinanceFromEntity creates a FinanceModel from a domain FinanceSnapshot entity.
func FinanceFromEntity(snapshot *entity.FinanceSnapshot) *FinanceModel {
	return &FinanceModel{
		ID:        snapshot.ID,
		UserID:    snapshot.UserID,
		Income:    snapshot.Income,
		Expenses:  snapshot.Expenses,
		Savings:   snapshot.Savings,
		CreatedAt: snapshot.CreatedAt,
	}
}
