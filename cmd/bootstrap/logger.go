package bootstrap

import (
	"log/slog"
	"os"

	"reservas-web/internal/pkg/config"
	"reservas-web/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

var DevServerLoggerModule = fx.Module("logger/devserver",
	fx.Provide(
		NewServerLogger,
	),
)

// NewLogger writes to stderr so log lines never interleave with the page
// drawn on stdout.
func NewLogger(cfg config.Config) *slog.Logger {
	return logger.New(cfg.Log, os.Stderr, false)
}

func NewServerLogger(cfg config.DevServerConfig) *slog.Logger {
	return logger.New(cfg.Log, os.Stdout, gin.Mode() == gin.ReleaseMode)
}
