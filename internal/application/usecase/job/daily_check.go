// Package job contains the periodic background jobs run by the scheduler.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/application/usecase/alert"
)

// DailyCheckJob raises the threshold alert and every insight alert for each user.
type DailyCheckJob struct {
	userRepo  adapter.UserRepository
	generator *alert.Generator
}

// NewDailyCheckJob creates a new DailyCheckJob instance.
func NewDailyCheckJob(userRepo adapter.UserRepository, generator *alert.Generator) *DailyCheckJob {
	return &DailyCheckJob{
		userRepo:  userRepo,
		generator: generator,
	}
}

// ID returns the job identifier.
func (j *DailyCheckJob) ID() string {
	return DailyCheckID
}

// Run evaluates every stored user.
func (j *DailyCheckJob) Run(ctx context.Context, now time.Time) (*Summary, error) {
	users, err := j.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summary := &Summary{Users: len(users)}
	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		alerts, err := j.generator.Evaluate(ctx, user, alert.Options{IncludeInsights: true})
		if err != nil {
			summary.Failed++
			slog.Error("Daily check failed for user",
				"job", DailyCheckID,
				"user_id", user.ID,
				"error", err,
			)
			continue
		}

		slog.Debug("Daily check completed for user",
			"job", DailyCheckID,
			"user_id", user.ID,
			"alerts", len(alerts),
			"run_at", now,
		)
	}

	return summary, nil
}
