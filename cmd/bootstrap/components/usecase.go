package components

import (
	"reservas-web/internal/usecase/backend"
	"reservas-web/internal/usecase/commands"
	"reservas-web/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewSessionQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewContactCommands,
		commands.NewAuthCommands,
	),
)

var BackendUseCaseModule = fx.Module("usecase/backend",
	fx.Provide(
		backend.NewEventQueries,
		backend.NewBookingCommands,
		backend.NewContactCommands,
		backend.NewAuthCommands,
		backend.NewUserQueries,
		backend.NewTokenValidator,
	),
)
