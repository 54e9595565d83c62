package queries

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports_mock.go -package=queriesmock

import (
	"context"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/user"
)

type EventCatalog interface {
	ListAvailableEvents(ctx context.Context) ([]*event.Event, error)
}

type SessionGateway interface {
	CurrentUser(ctx context.Context) (*user.Profile, error)
}
