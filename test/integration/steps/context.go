// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/infra/dependency"
	"github.com/finance-tracker/planner/internal/integration/email"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
	"github.com/finance-tracker/planner/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// suite holds the resources shared by every scenario.
type suite struct {
	server      *httptest.Server
	db          *mock.Db
	redis       *redis.Client
	resendMock  *mock.ApiMock
	clock       *mock.Clock
	emailWorker *email.Worker
}

var (
	suiteOnce   sync.Once
	suiteShared *suite
)

// testContext holds the state of one scenario.
type testContext struct {
	*suite
	client       *http.Client
	headers      map[string]string
	response     *response
	accessToken  string
	refreshToken string
	lastID       string
	ids          map[string]string
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if suiteShared != nil && suiteShared.server != nil {
			suiteShared.server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		suite:  startSuite(),
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	registerRequestSteps(ctx, test)
	registerDataSteps(ctx, test)
}

func startSuite() *suite {
	suiteOnce.Do(func() {
		s := &suite{
			db: mock.NewDb("budget_planner", map[string]any{
				"users":           &model.UserModel{},
				"refresh_tokens":  &model.RefreshTokenModel{},
				"one_time_tokens": &model.OneTimeTokenModel{},
				"app_data":        &model.AppDataModel{},
				"email_queue":     &model.EmailQueueModel{},
			}),
			redis:      mock.NewRedis(),
			resendMock: mock.NewApiServer(),
			clock:      mock.NewClock(),
		}
		s.resendMock.Start()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.JWT.BcryptCost = 4
		cfg.Redis.CacheTTL = time.Minute
		cfg.Email.ResendAPIKey = "re_test_key"
		cfg.Email.ResendBaseURL = s.resendMock.GetUrl()
		cfg.RateLimit.Enabled = false

		injector, err := dependency.NewInjector(cfg, s.db.DbConn, dependency.Options{
			Redis: s.redis,
			Clock: s.clock,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to build the application: %v", err))
		}

		s.emailWorker = injector.EmailWorker
		s.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
		suiteShared = s
	})
	return suiteShared
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.lastID = ""
	t.ids = make(map[string]string)

	t.clock.Unpin()
	t.resendMock.ClearResponses("POST", "/emails")
	t.resendMock.SetResponse(-1, "POST", "/emails", http.StatusOK, map[string]any{"id": "email-test-id"})

	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) todayIs(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	t.clock.Pin(parsed.Add(12 * time.Hour))
	return nil
}
