//go:build unit || e2e

package builder

import (
	"time"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/usecase/shared"
)

type EventBuilder struct {
	ID       string
	Title    string
	Date     time.Time
	Category string
	Capacity int
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:       "7",
		Title:    "Taller de cerámica",
		Date:     time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC),
		Category: "talleres",
		Capacity: 20,
	}
}

func (e *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(e)
	return e
}

// Build methods
func (e *EventBuilder) BuildDomain() *event.Event {
	id := EventID(e.ID)
	ev, err := event.NewEvent(id, e.Title, event.DateOf(e.Date))
	if err != nil {
		panic(err)
	}
	return ev
}

func (e *EventBuilder) BuildSnapshot() shared.EventSnapshot {
	id := EventID(e.ID)
	return shared.EventSnapshot{
		ID:       id,
		Title:    e.Title,
		Date:     event.DateOf(e.Date),
		Category: e.Category,
		Capacity: e.Capacity,
	}
}

// BuildRecord returns the catalog record as the backend serializes it.
func (e *EventBuilder) BuildRecord() map[string]any {
	return map[string]any{
		"id":     eventIDValue(EventID(e.ID)),
		"titulo": e.Title,
		"fecha":  e.Date.Format("2006-01-02"),
	}
}
