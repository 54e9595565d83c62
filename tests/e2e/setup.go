//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"reservas-web/cmd/bootstrap"
	"reservas-web/cmd/bootstrap/components"
	"reservas-web/internal/infra/api"
	"reservas-web/internal/infra/memstore"
	"reservas-web/internal/pkg/clock"
	"reservas-web/internal/pkg/config"
	"reservas-web/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// Today for every e2e run; the default seed places events relative to it.
var e2eNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// Development backend behind a real listener, one per test
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*httptest.Server, *memstore.Store, *clock.MockClock, config.DevServerConfig) {
	gin.SetMode(gin.TestMode)

	clk := clock.NewMockClock(e2eNow)
	router, store, cfg, app := buildE2EApp(clk)
	require.NotNil(t, router, "router setup failed")

	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return server, store, clk, cfg
}

// ------------------------------------------------------------
// Builds the backend from the production modules, with test
// config and a fixed clock
// ------------------------------------------------------------
func buildE2EApp(clk *clock.MockClock) (*gin.Engine, *memstore.Store, config.DevServerConfig, *fx.App) {
	var (
		router *gin.Engine
		store  *memstore.Store
		cfg    config.DevServerConfig
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			config.NewTestDevServerConfig,
			func() clock.Clock { return clk },
			func() *slog.Logger { return logger.Discard() },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.StoreModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.BackendUseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &store, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, store, cfg, app
}

// NewClient returns a fresh client, with its own cookie jar, for the server.
func NewClient(t *testing.T, server *httptest.Server) *api.Client {
	t.Helper()
	client, err := api.NewClient(config.APIConfig{
		BaseURL:   server.URL,
		Timeout:   5 * time.Second,
		UserAgent: "reservas-web-e2e",
	}, logger.Discard())
	require.NoError(t, err)
	return client
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Server *httptest.Server
	Store  *memstore.Store
	Clock  *clock.MockClock
	Config config.DevServerConfig
	Client *api.Client
}

// SetupTest starts from the seed for every test method.
func (s *SharedSuite) SetupTest() {
	s.Server, s.Store, s.Clock, s.Config = setupE2EEnvironment(s.T())
	s.Client = NewClient(s.T(), s.Server)
}
