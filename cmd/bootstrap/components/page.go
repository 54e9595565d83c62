package components

import (
	"context"
	"log/slog"
	"os"

	"reservas-web/internal/page"
	"reservas-web/internal/usecase/commands"
	"reservas-web/internal/usecase/queries"

	"go.uber.org/fx"
)

var PageModule = fx.Module("page",
	fx.Provide(
		NewPage,
	),
)

// NewPage builds the page view drawn on stdout. Stopping the app closes it,
// which cancels any request still in flight.
func NewPage(
	lc fx.Lifecycle,
	catalog queries.CatalogQueries,
	session queries.SessionQueries,
	reservations commands.ReservationCommands,
	contact commands.ContactCommands,
	auth commands.AuthCommands,
	logger *slog.Logger,
) *page.Page {
	p := page.New(context.Background(), catalog, session, reservations, contact, auth,
		page.NewRenderer(os.Stdout), logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			p.Close()
			return nil
		},
	})
	return p
}
