// Package job contains the periodic background jobs run by the scheduler.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/valueobject"
)

// MonthlyReportJob appends a snapshot of every user to the report sink.
type MonthlyReportJob struct {
	userRepo adapter.UserRepository
	writer   adapter.ReportWriter
}

// NewMonthlyReportJob creates a new MonthlyReportJob instance.
func NewMonthlyReportJob(userRepo adapter.UserRepository, writer adapter.ReportWriter) *MonthlyReportJob {
	return &MonthlyReportJob{
		userRepo: userRepo,
		writer:   writer,
	}
}

// ID returns the job identifier.
func (j *MonthlyReportJob) ID() string {
	return MonthlyReportID
}

// Run writes one report record keyed by "user_{id}".
func (j *MonthlyReportJob) Run(ctx context.Context, now time.Time) (*Summary, error) {
	users, err := j.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	timestamp := now.UTC().Format(time.RFC3339)
	report := make(adapter.MonthlyReport, len(users))
	for _, user := range users {
		report["user_"+user.ID.String()] = adapter.UserReport{
			Name:               user.Name,
			MonthlyIncome:      valueobject.FormatCurrency(user.MonthlyIncome),
			MonthlyExpenses:    valueobject.FormatCurrency(user.MonthlyExpenses),
			MonthlySavings:     valueobject.FormatCurrency(user.MonthlySavings()),
			MonthlySavingsGoal: valueobject.FormatCurrency(user.MonthlySavingsGoal),
			RiskProfile:        string(user.RiskProfile),
			Timestamp:          timestamp,
		}
	}

	if err := j.writer.Append(ctx, now, report); err != nil {
		return nil, fmt.Errorf("failed to write monthly report: %w", err)
	}

	return &Summary{Users: len(users)}, nil
}
