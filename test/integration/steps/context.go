// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercearia/backend/config"
	"github.com/mercearia/backend/internal/infra/cache"
	"github.com/mercearia/backend/internal/infra/dependency"
	"github.com/mercearia/backend/internal/integration/persistence/model"
	"github.com/mercearia/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Values captured during the scenario, substituted for {{name}} in paths and bodies.
	vars map[string]string

	cfg      *config.Config
	db       *mock.Db
	redis    *cache.Redis
	clock    *mock.Time
	injector *dependency.Injector
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Security.BcryptCost = bcrypt.MinCost
	cfg.Seed.Enabled = true
	return cfg
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			vars:           make(map[string]string),
			cfg:            testConfig(),
			clock:          mock.NewTime(),
			db: mock.NewDb(map[string]any{
				"users":     &model.UserModel{},
				"products":  &model.ProductModel{},
				"favorites": &model.FavoriteModel{},
			}),
			redis: cache.NewRedisFromClient(mock.NewRedis()),
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(tc.redis.Client); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		tc.injector = dependency.NewInjector(tc.cfg, tc.db.DbConn, tc.redis)
		tc.server = httptest.NewServer(tc.injector.Router.Setup(tc.cfg.Server.Environment))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDataSteps(ctx)
}

// expand replaces {{name}} placeholders with captured values.
func (tc *TestContext) expand(content string) string {
	for name, value := range tc.vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}
