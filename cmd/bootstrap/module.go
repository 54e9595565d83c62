package bootstrap

import (
	"reservas-web/cmd/bootstrap/components"
	"reservas-web/internal/pkg/clock"

	"go.uber.org/fx"
)

// Module wires the terminal reservation page against a remote backend.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.PageModule,
)

// DevServerModule wires the in-memory development backend.
var DevServerModule = fx.Options(
	DevServerConfigModule,
	DevServerLoggerModule,
	fx.Provide(clock.NewRealClock),
	StoreModule,
	JWTModule,
	components.PersistenceModule,
	components.BackendUseCaseModule,
	components.HandlerModule,
)
