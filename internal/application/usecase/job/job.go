// Package job contains the periodic background jobs run by the scheduler.
package job

import (
	"context"
	"time"
)

// Job identifiers.
const (
	DailyCheckID    = "daily_check"
	WeeklyMonitorID = "weekly_monitor"
	MonthlyReportID = "monthly_report"
)

// Job is a periodic task over all stored users.
type Job interface {
	// ID identifies the job in logs and for the job lock.
	ID() string

	// Run executes one pass. A per-user failure is logged and does not abort the pass;
	// the returned error is reserved for failures that stop the whole run.
	Run(ctx context.Context, now time.Time) (*Summary, error)
}

// Summary reports the outcome of one run.
type Summary struct {
	Users  int
	Failed int
}
