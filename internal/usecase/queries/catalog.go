package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"context"
	"log/slog"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/pkg/errs"
)

const MessageCatalogUnavailable = "No se pudieron cargar los eventos."

var ErrCatalogUnavailable = errs.New("event catalog unavailable")

type CatalogQueries interface {
	LoadOptions(ctx context.Context) ([]event.Option, error)
}

type catalogQueriesImpl struct {
	catalog EventCatalog
	logger  *slog.Logger
}

func NewCatalogQueries(catalog EventCatalog, logger *slog.Logger) CatalogQueries {
	return &catalogQueriesImpl{
		catalog: catalog,
		logger:  logger,
	}
}

// LoadOptions fetches the catalog once and maps every event to a selector
// option, in backend order. On failure no options are returned.
func (q *catalogQueriesImpl) LoadOptions(ctx context.Context) ([]event.Option, error) {
	events, err := q.catalog.ListAvailableEvents(ctx)
	if err != nil {
		if ctx.Err() == nil {
			q.logger.Warn("Failed to load event catalog", "error", err)
		}
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}
	return event.OptionsFor(events), nil
}
