// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/domain/entity"
)

// AlertModel represents the alerts table in the database.
type AlertModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_alerts_user_created"`
	Message   string    `gorm:"type:text;not null"`
	Level     string    `gorm:"type:varchar(20);not null;default:'info'"`
	Status    string    `gorm:"type:varchar(20);not null;default:'unread'"`
	CreatedAt time.Time `gorm:"not null;index:idx_alerts_user_created"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the AlertModel.
func (AlertModel) TableName() string {
	return "alerts"
}

// ToEntity converts an AlertModel to a domain Alert entity.
func (m *AlertModel) ToEntity() *entity.Alert {
	return &entity.Alert{
		ID:        m.ID,
		UserID:    m.UserID,
		Message:   m.Message,
		Level:     entity.AlertLevel(m.Level),
		Status:    entity.AlertStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// AlertFromEntity creates an AlertModel from a domain Alert entity.
func AlertFromEntity(alert *entity.Alert) *AlertModel {
	return &AlertModel{
		ID:        alert.ID,
		UserID:    alert.UserID,
		Message:   alert.Message,
		Level:     string(alert.Level),
		Status:    string(alert.Status),
		CreatedAt: alert.CreatedAt,
	}
}

// AlertsFromEntities converts a batch of alerts.
func AlertsFromEntities(alerts []*entity.Alert) []*AlertModel {
	models := make([]*AlertModel, len(alerts))
	for i, a := range alerts {
		models[i] = AlertFromEntity(a)
	}
	return models
}
