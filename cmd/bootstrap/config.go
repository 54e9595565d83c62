package bootstrap

import (
	"reservas-web/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var DevServerConfigModule = fx.Module("config/devserver",
	fx.Provide(
		config.LoadDevServerConfig,
	),
)
