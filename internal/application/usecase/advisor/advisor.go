// Package advisor contains the conversational finance advisor use cases.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/domain/insight"
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Settings holds the generation parameters sent with every request.
type Settings struct {
	MaxTokens   int
	Temperature float32
}

// DefaultSettings returns the standard generation parameters.
func DefaultSettings() Settings {
	return Settings{
		MaxTokens:   500,
		Temperature: 0.7,
	}
}

// Result is the outcome of one advisor call. On failure Advice is empty and
// Error and FallbackAdvice are set.
type Result struct {
	Status         string
	Advice         string
	Error          string
	FallbackAdvice string
	Insights       []insight.Insight
	Timestamp      time.Time
}

// Text returns the advice, or the fallback when the call failed.
func (r *Result) Text() string {
	if r.Status == StatusSuccess {
		return r.Advice
	}
	return r.FallbackAdvice
}

// Advisor builds prompts and forwards them to the inference service.
type Advisor struct {
	inference adapter.InferenceService
	settings  Settings
}

// NewAdvisor creates a new Advisor. A nil inference service always yields the fallback.
func NewAdvisor(inference adapter.InferenceService, settings Settings) *Advisor {
	return &Advisor{
		inference: inference,
		settings:  settings,
	}
}

// Advise makes one synchronous inference call. It never returns an error:
// failures are reported through the fallback fields of the Result.
func (a *Advisor) Advise(ctx context.Context, user *entity.User, message string) *Result {
	analyzer := insight.NewAnalyzer(insight.InputFromUser(user))
	result := &Result{
		Insights:  analyzer.Insights(),
		Timestamp: time.Now().UTC(),
	}

	advice, err := a.generate(ctx, BuildPrompt(user, analyzer, message))
	if err != nil {
		slog.Warn("Advisor inference failed, using fallback",
			"user_id", user.ID,
			"error", err,
		)
		result.Status = StatusError
		result.Error = err.Error()
		result.FallbackAdvice = FallbackAdvice(analyzer)
		return result
	}

	result.Status = StatusSuccess
	result.Advice = advice
	return result
}

// IsAvailable reports whether an inference provider is configured.
func (a *Advisor) IsAvailable() bool {
	return a.inference != nil && a.inference.IsAvailable()
}

func (a *Advisor) generate(ctx context.Context, prompt string) (string, error) {
	if !a.IsAvailable() {
		return "", domainerror.ErrAdvisorUnavailable
	}

	text, err := a.inference.Generate(ctx, adapter.InferenceRequest{
		Prompt:      prompt,
		MaxTokens:   a.settings.MaxTokens,
		Temperature: a.settings.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", a.inference.Name(), err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", domainerror.ErrAdvisorEmptyResponse
	}
	return text, nil
}

func findUser(ctx context.Context, userRepo adapter.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAdvisorError(
				domainerror.ErrCodeAdvisorUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
