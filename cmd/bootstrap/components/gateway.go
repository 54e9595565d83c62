package components

import (
	"log/slog"

	"reservas-web/internal/infra/api"
	"reservas-web/internal/pkg/config"
	"reservas-web/internal/usecase/commands"
	"reservas-web/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewAPIClient,
			fx.As(new(queries.EventCatalog)),
			fx.As(new(queries.SessionGateway)),
			fx.As(new(commands.ReservationGateway)),
			fx.As(new(commands.ContactGateway)),
			fx.As(new(commands.AuthGateway)),
		),
	),
)

func NewAPIClient(cfg config.Config, logger *slog.Logger) (*api.Client, error) {
	return api.NewClient(cfg.API, logger)
}
