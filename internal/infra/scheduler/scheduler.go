// Package scheduler runs the periodic jobs on calendar triggers.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/application/usecase/job"
)

// DefaultSchedules maps each job id to its cron expression.
var DefaultSchedules = map[string]string{
	job.DailyCheckID:    "0 9 * * *",
	job.WeeklyMonitorID: "0 10 * * 1",
	job.MonthlyReportID: "0 12 1 * *",
}

// Scheduler owns the cron runner. Jobs are registered before Start.
type Scheduler struct {
	cron    *cron.Cron
	lock    adapter.JobLock
	lockTTL time.Duration
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// New creates a scheduler evaluating triggers in the given location.
func New(location *time.Location, lock adapter.JobLock, lockTTL time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	logger := slogLogger{}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		),
		lock:    lock,
		lockTTL: lockTTL,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[string]cron.EntryID),
	}
}

// Register schedules the job with a standard five-field cron expression.
func (s *Scheduler) Register(spec string, j job.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[j.ID()]; exists {
		return fmt.Errorf("job %s already registered", j.ID())
	}

	id, err := s.cron.AddFunc(spec, func() {
		s.RunJob(s.ctx, j)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, j.ID(), err)
	}

	s.entries[j.ID()] = id
	slog.Info("Job registered", "job", j.ID(), "schedule", spec)
	return nil
}

// RunJob executes one run of the job under its lock. It returns false when the run was skipped.
func (s *Scheduler) RunJob(ctx context.Context, j job.Job) bool {
	release, ok, err := s.lock.TryAcquire(ctx, j.ID(), s.lockTTL)
	if err != nil {
		slog.Error("Failed to acquire job lock", "job", j.ID(), "error", err)
		return false
	}
	if !ok {
		slog.Warn("Job already running, skipping", "job", j.ID())
		return false
	}
	defer release()

	started := s.now()
	summary, err := j.Run(ctx, started)
	if err != nil {
		slog.Error("Job failed", "job", j.ID(), "error", err)
		return true
	}

	slog.Info("Job completed",
		"job", j.ID(),
		"users", summary.Users,
		"failed", summary.Failed,
		"duration", time.Since(started),
	)
	return true
}

// Next returns the next trigger time of a registered job.
func (s *Scheduler) Next(jobID string) (time.Time, bool) {
	s.mu.Lock()
	id, ok := s.entries[jobID]
	s.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}

// Start begins firing triggers in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Scheduler started", "jobs", len(s.entries))
}

// Stop halts new triggers, cancels running jobs and waits for them until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()

	select {
	case <-done.Done():
		slog.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// slogLogger adapts slog to the cron.Logger interface.
type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
