package event

import "strings"

// Event is a bookable occurrence as listed by the catalog endpoint. It is
// read-only on the client.
type Event struct {
	id    ID
	title string
	date  Date
}

func NewEvent(id ID, title string, date Date) (*Event, error) {
	if id.IsZero() {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	return &Event{id: id, title: title, date: date}, nil
}

func (e *Event) ID() ID        { return e.id }
func (e *Event) Title() string { return e.title }
func (e *Event) Date() Date    { return e.date }

// Label is the selector text: "<titulo> (<fecha>)".
func (e *Event) Label() string {
	return e.title + " (" + e.date.String() + ")"
}

// Option is one entry of the event selector.
type Option struct {
	Value ID
	Label string
}

func OptionsFor(events []*Event) []Option {
	options := make([]Option, 0, len(events))
	for _, e := range events {
		options = append(options, Option{Value: e.ID(), Label: e.Label()})
	}
	return options
}
