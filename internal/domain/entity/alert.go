// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertLevel represents the severity of an alert.
type AlertLevel string

const (
	AlertLevelInfo     AlertLevel = "info"
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelCritical AlertLevel = "critical"
	AlertLevelSuccess  AlertLevel = "success"
)

// IsValid reports whether the level belongs to the closed set of levels.
func (l AlertLevel) IsValid() bool {
	switch l {
	case AlertLevelInfo, AlertLevelWarning, AlertLevelCritical, AlertLevelSuccess:
		return true
	}
	return false
}

// AlertStatus represents whether the user has seen the alert.
type AlertStatus string

const (
	AlertStatusUnread AlertStatus = "unread"
	AlertStatusRead   AlertStatus = "read"
)

// IsValid reports whether the status belongs to the closed set of statuses.
func (s AlertStatus) IsValid() bool {
	return s == AlertStatusUnread || s == AlertStatusRead
}

// Alert is a user-visible notification raised by a threshold breach or an insight.
type Alert struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	Level     AlertLevel
	Status    AlertStatus
	CreatedAt time.Time
}

// NewAlert creates a new unread Alert.
func NewAlert(userID uuid.UUID, message string, level AlertLevel) *Alert {
	if !level.IsValid() {
		level = AlertLevelInfo
	}

	return &Alert{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Level:     level,
		Status:    AlertStatusUnread,
		CreatedAt: time.Now().UTC(),
	}
}

// MarkRead flips the alert to read. Calling it on a read alert is a no-op.
func (a *Alert) MarkRead() {
	a.Status = AlertStatusRead
}
