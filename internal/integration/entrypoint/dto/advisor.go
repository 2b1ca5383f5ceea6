// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/usecase/advisor"
	"github.com/finai/backend/internal/domain/entity"
	"github.com/finai/backend/internal/domain/insight"
)

// ChatRequest represents the body of a chat turn.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatMessageResponse represents one transcript entry.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatHistoryResponse represents the chat transcript, oldest first.
type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// ToChatHistoryResponse converts messages to their DTOs.
func ToChatHistoryResponse(messages []*entity.ChatMessage) ChatHistoryResponse {
	out := make([]ChatMessageResponse, len(messages))
	for i, m := range messages {
		out[i] = ChatMessageResponse{
			ID:        m.ID.String(),
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return ChatHistoryResponse{Messages: out}
}

// AdviceRequest represents the optional body of an advice request.
type AdviceRequest struct {
	EmergencyFund *decimal.Decimal `json:"emergency_fund"`
}

// AdviceResponse represents the advisor result.
type AdviceResponse struct {
	Status         string            `json:"status"`
	Advice         string            `json:"advice,omitempty"`
	Error          string            `json:"error,omitempty"`
	FallbackAdvice string            `json:"fallback_advice,omitempty"`
	Insights       []insight.Insight `json:"insights"`
	Timestamp      string            `json:"timestamp"`
}

// ToAdviceResponse converts an advisor result to its DTO.
func ToAdviceResponse(r *advisor.Result) AdviceResponse {
	insights := r.Insights
	if insights == nil {
		insights = []insight.Insight{}
	}
	return AdviceResponse{
		Status:         r.Status,
		Advice:         r.Advice,
		Error:          r.Error,
		FallbackAdvice: r.FallbackAdvice,
		Insights:       insights,
		Timestamp:      r.Timestamp.Format(time.RFC3339),
	}
}
