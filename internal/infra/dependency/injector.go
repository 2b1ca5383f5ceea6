// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finai/backend/config"
	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/application/usecase/advisor"
	"github.com/finai/backend/internal/application/usecase/alert"
	"github.com/finai/backend/internal/application/usecase/finance"
	"github.com/finai/backend/internal/application/usecase/job"
	"github.com/finai/backend/internal/application/usecase/user"
	"github.com/finai/backend/internal/infra/cache"
	"github.com/finai/backend/internal/infra/scheduler"
	"github.com/finai/backend/internal/infra/server/router"
	"github.com/finai/backend/internal/integration/adapters"
	"github.com/finai/backend/internal/integration/entrypoint/controller"
	"github.com/finai/backend/internal/integration/entrypoint/middleware"
	"github.com/finai/backend/internal/integration/lock"
	"github.com/finai/backend/internal/integration/persistence"
	"github.com/finai/backend/internal/integration/report"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	Scheduler *scheduler.Scheduler
	Jobs      []job.Job

	// RateLimiter guards the advisor routes; its idle clients are evicted by RunCleanup.
	RateLimiter *middleware.RateLimiter
}

// NewInjector wires repositories, use cases, controllers and jobs.
// redisClient may be nil, in which case job locks are held in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	financeRepo := persistence.NewFinanceRepository(db)
	alertRepo := persistence.NewAlertRepository(db)
	chatRepo := persistence.NewChatRepository(db)

	// Create adapters/services
	inference := adapters.NewInferenceService(
		cfg.Advisor.Provider,
		adapters.NewHuggingFaceService(cfg.Advisor.HFToken, cfg.Advisor.HFEndpoint, cfg.Advisor.HFModel, cfg.Advisor.Timeout),
		adapters.NewGeminiService(cfg.Advisor.GeminiKey, cfg.Advisor.GeminiModel),
	)
	if !inference.IsAvailable() {
		slog.Warn("Advisor provider not configured, fallback advice will be served", "provider", inference.Name())
	}

	var jobLock adapter.JobLock
	if redisClient != nil {
		jobLock = lock.NewRedisLock(redisClient)
	} else {
		jobLock = lock.NewMemoryLock()
	}

	// Create use cases
	finAdvisor := advisor.NewAdvisor(inference, advisor.Settings{
		MaxTokens:   cfg.Advisor.MaxTokens,
		Temperature: float32(cfg.Advisor.Temperature),
	})
	generator := alert.NewGenerator(alertRepo)

	createUserUseCase := user.NewCreateUserUseCase(userRepo)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo)

	listAlertsUseCase := alert.NewListAlertsUseCase(alertRepo, userRepo)
	markAlertReadUseCase := alert.NewMarkAlertReadUseCase(alertRepo)

	chatUseCase := advisor.NewChatUseCase(userRepo, chatRepo, finAdvisor)
	historyUseCase := advisor.NewGetHistoryUseCase(userRepo, chatRepo)
	adviceUseCase := advisor.NewGetAdviceUseCase(userRepo, finAdvisor)

	listFinancesUseCase := finance.NewListFinancesUseCase(financeRepo, userRepo)

	// Create controllers
	healthController := controller.NewHealthController(controller.HealthChecks{
		Database: func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		Cache:   cache.HealthCheck(redisClient),
		Advisor: inference.IsAvailable,
	})
	userController := controller.NewUserController(createUserUseCase, getUserUseCase, updateUserUseCase)
	alertController := controller.NewAlertController(listAlertsUseCase, markAlertReadUseCase)
	advisorController := controller.NewAdvisorController(chatUseCase, historyUseCase, adviceUseCase)
	financeController := controller.NewFinanceController(listFinancesUseCase)

	// Create middleware
	advisorRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	r := router.NewRouter(
		healthController,
		userController,
		alertController,
		advisorController,
		financeController,
		advisorRateLimiter,
	)

	// Create jobs
	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone %q: %w", cfg.Scheduler.Timezone, err)
	}

	jobs := []job.Job{
		job.NewDailyCheckJob(userRepo, generator),
		job.NewWeeklyMonitorJob(userRepo, alertRepo),
		job.NewMonthlyReportJob(userRepo, report.NewJSONLinesWriter(cfg.Scheduler.ReportPath)),
	}

	sched := scheduler.New(location, jobLock, cfg.Scheduler.LockTTL)
	for _, j := range jobs {
		if err := sched.Register(scheduler.DefaultSchedules[j.ID()], j); err != nil {
			return nil, err
		}
	}

	return &Injector{
		Config:    cfg,
		DB:        db,
		Router:    r,
		Scheduler: sched,
		Jobs:      jobs,

		RateLimiter: advisorRateLimiter,
	}, nil
}

// Job returns the wired job with the given id.
func (i *Injector) Job(id string) (job.Job, bool) {
	for _, j := range i.Jobs {
		if j.ID() == id {
			return j, true
		}
	}
	return nil, false
}
