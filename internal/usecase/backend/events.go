package backend

//go:generate mockgen -source=events.go -destination=../../../tests/mock/backend/events_mock.go -package=backendmock

import (
	"context"
	"strings"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/pkg/clock"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/usecase/shared"
)

type EventQueries interface {
	ListAvailable(ctx context.Context, category string) ([]shared.EventSnapshot, error)
}

type eventQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEventQueries(uow shared.UnitOfWork, clk clock.Clock) EventQueries {
	return &eventQueriesImpl{
		uow:   uow,
		clock: clk,
	}
}

// ListAvailable returns events dated today or later, in store order. A
// non-empty category narrows the list (case-insensitive).
func (q *eventQueriesImpl) ListAvailable(ctx context.Context, category string) ([]shared.EventSnapshot, error) {
	all, err := q.uow.Reads().ListEvents(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list events")
	}

	today := event.DateOf(clock.Today(q.clock))
	category = strings.TrimSpace(category)

	available := make([]shared.EventSnapshot, 0, len(all))
	for _, e := range all {
		if e.Date.Before(today) {
			continue
		}
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}
		available = append(available, e)
	}
	return available, nil
}
