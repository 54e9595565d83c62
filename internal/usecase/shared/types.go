package shared

import (
	"reservas-web/internal/domain/event"
)

// EventSnapshot is an event as the backend stores it, with the fields the
// public catalog does not expose.
type EventSnapshot struct {
	ID       event.ID
	Title    string
	Date     event.Date
	Category string
	Capacity int
}

func (s EventSnapshot) ToDomain() (*event.Event, error) {
	return event.NewEvent(s.ID, s.Title, s.Date)
}
