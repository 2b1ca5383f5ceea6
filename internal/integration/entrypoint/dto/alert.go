// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finai/backend/internal/domain/entity"
)

// AlertResponse represents a single alert in API responses.
type AlertResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAlertListResponse converts alerts to their DTOs, keeping order.
func ToAlertListResponse(alerts []*entity.Alert) []AlertResponse {
	response := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		response[i] = AlertResponse{
			ID:        a.ID.String(),
			Message:   a.Message,
			Level:     string(a.Level),
			Status:    string(a.Status),
			CreatedAt: a.CreatedAt,
		}
	}
	return response
}
