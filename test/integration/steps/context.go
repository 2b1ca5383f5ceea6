// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finai/backend/config"
	"github.com/finai/backend/internal/infra/dependency"
	"github.com/finai/backend/internal/integration/persistence/model"
	"github.com/finai/backend/test/integration/mock"
)

const (
	advisorModel = "finai-test-model"
	advisorPath  = "/models/" + advisorModel
)

// suiteResources are shared by every scenario and reset between them.
type suiteResources struct {
	db         *mock.Db
	advisorAPI *mock.ApiMock
	redis      *redis.Client
	injector   *dependency.Injector
	server     *httptest.Server
	reportPath string
}

var (
	suiteInit sync.Once
	shared    *suiteResources
)

// TestContext holds the state of one scenario.
type TestContext struct {
	client   *http.Client
	headers  map[string]string
	vars     map[string]string
	response *response
}

type response struct {
	status int
	body   any
	raw    string
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(setupSuite)

	ctx.AfterSuite(func() {
		if shared == nil {
			return
		}
		shared.server.Close()
		shared.advisorAPI.Close()
		mock.CloseRedis()
		_ = os.RemoveAll(filepath.Dir(shared.reportPath))
	})
}

func setupSuite() {
	suiteInit.Do(func() {
		gin.SetMode(gin.TestMode)

		db := mock.NewDb("finai",
			mock.Table{Name: "users", Model: &model.UserModel{}},
			mock.Table{Name: "finances", Model: &model.FinanceModel{}},
			mock.Table{Name: "alerts", Model: &model.AlertModel{}},
			mock.Table{Name: "chat_history", Model: &model.ChatMessageModel{}},
		)

		advisorAPI := mock.NewApiServer()
		advisorAPI.Start()

		reportDir, err := os.MkdirTemp("", "finai-reports")
		if err != nil {
			panic(err)
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Advisor.Provider = "huggingface"
		cfg.Advisor.HFToken = "test-token"
		cfg.Advisor.HFEndpoint = advisorAPI.GetUrl()
		cfg.Advisor.HFModel = advisorModel
		cfg.Advisor.Timeout = 5 * time.Second
		cfg.RateLimit.Requests = 0
		cfg.Scheduler.Timezone = "UTC"
		cfg.Scheduler.ReportPath = filepath.Join(reportDir, "agent_logs.jsonl")

		redisClient := mock.NewRedis()

		injector, err := dependency.NewInjector(cfg, db.DbConn, redisClient)
		if err != nil {
			panic(err)
		}

		shared = &suiteResources{
			db:         db,
			advisorAPI: advisorAPI,
			redis:      redisClient,
			injector:   injector,
			server:     httptest.NewServer(injector.Router.Setup("test")),
			reportPath: cfg.Scheduler.ReportPath,
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &TestContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		setupSuite()
		return ctx, test.before()
	})

	registerAPISteps(ctx, test)
	registerDomainSteps(ctx, test)
}

func (t *TestContext) before() error {
	t.headers = make(map[string]string)
	t.vars = make(map[string]string)
	t.response = nil

	if err := shared.db.ClearDB(); err != nil {
		return err
	}
	shared.advisorAPI.ClearResponses(http.MethodPost, advisorPath)
	if err := mock.ClearRedis(shared.redis); err != nil {
		return err
	}
	if err := os.Remove(shared.reportPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
