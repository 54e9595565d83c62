package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

// Config drives the terminal reservation page.
type Config struct {
	API APIConfig
	Log LogConfig
}

// DevServerConfig drives the in-memory development backend.
type DevServerConfig struct {
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Seed   SeedConfig
}

type APIConfig struct {
	BaseURL   string        `envconfig:"API_BASE_URL" default:"http://localhost:8000"`
	Timeout   time.Duration `envconfig:"API_TIMEOUT" default:"15s"` // 0 disables
	UserAgent string        `envconfig:"API_USER_AGENT" default:"reservas-web/1.0"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Montevideo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"1h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type SeedConfig struct {
	File         string `envconfig:"SEED_FILE" default:""`
	PasswordCost int    `envconfig:"SEED_PASSWORD_COST" default:"10"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadDevServerConfig() (DevServerConfig, error) {
	var cfg DevServerConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return DevServerConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8889", // Test backend port
			Timeout:   5 * time.Second,
			UserAgent: "reservas-web-test",
		},
		Log: newTestLogConfig(),
	}
}

func NewTestDevServerConfig() DevServerConfig {
	return DevServerConfig{
		Server: ServerConfig{
			Port: "8889",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: newTestLogConfig(),
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Seed: SeedConfig{
			PasswordCost: 4, // bcrypt.MinCost
		},
	}
}

func newTestLogConfig() LogConfig {
	return LogConfig{
		Level:          "error", // Error level only for tests
		TimeZone:       "America/Montevideo",
		TimeFormat:     "2006-01-02 15:04:05.000",
		TimeZoneOffset: -10800,
	}
}
