//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"reservas-web/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults apply when nothing is set", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
		assert.Equal(t, 15*time.Second, cfg.API.Timeout)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://reservas.example.com")
		t.Setenv("API_TIMEOUT", "0s")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "https://reservas.example.com", cfg.API.BaseURL)
		assert.Zero(t, cfg.API.Timeout)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("invalid duration fails", func(t *testing.T) {
		t.Setenv("API_TIMEOUT", "soon")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to process env config")
	})
}

func TestLoadDevServerConfig(t *testing.T) {
	t.Run("JWT secret is required", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "placeholder") // restored after the test
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := config.LoadDevServerConfig()
		require.Error(t, err)
	})

	t.Run("lists are split on commas", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test,http://b.test")

		cfg, err := config.LoadDevServerConfig()
		require.NoError(t, err)

		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowOrigins)
		assert.Equal(t, time.Hour, cfg.JWT.Duration)
		assert.Equal(t, "8000", cfg.Server.Port)
		assert.Equal(t, "Lax", cfg.Cookie.SameSite)
		assert.Equal(t, 10, cfg.Seed.PasswordCost)
	})
}
