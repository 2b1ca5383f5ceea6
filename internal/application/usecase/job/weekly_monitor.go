// Package job contains the periodic background jobs run by the scheduler.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	"github.com/finai/backend/internal/domain/valueobject"
)

// WeeklyMonitorJob congratulates every user with positive savings.
type WeeklyMonitorJob struct {
	userRepo  adapter.UserRepository
	alertRepo adapter.AlertRepository
}

// NewWeeklyMonitorJob creates a new WeeklyMonitorJob instance.
func NewWeeklyMonitorJob(userRepo adapter.UserRepository, alertRepo adapter.AlertRepository) *WeeklyMonitorJob {
	return &WeeklyMonitorJob{
		userRepo:  userRepo,
		alertRepo: alertRepo,
	}
}

// ID returns the job identifier.
func (j *WeeklyMonitorJob) ID() string {
	return WeeklyMonitorID
}

// Run stores one success alert per saving user.
func (j *WeeklyMonitorJob) Run(ctx context.Context, now time.Time) (*Summary, error) {
	users, err := j.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summary := &Summary{Users: len(users)}
	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		savings := user.MonthlySavings()
		if !savings.IsPositive() {
			continue
		}

		success := entity.NewAlert(user.ID,
			fmt.Sprintf("Great! You saved %s this week. Keep up the momentum!", valueobject.FormatCurrency(savings)),
			entity.AlertLevelSuccess)

		if err := j.alertRepo.CreateMany(ctx, []*entity.Alert{success}); err != nil {
			summary.Failed++
			slog.Error("Weekly monitor failed for user",
				"job", WeeklyMonitorID,
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	return summary, nil
}
