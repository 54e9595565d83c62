package components

import (
	"reservas-web/internal/handler"
	"reservas-web/internal/handler/api"
	"reservas-web/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewReservationHandler,
		api.NewAuthHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
