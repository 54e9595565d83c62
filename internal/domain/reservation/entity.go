package reservation

import (
	"reservas-web/internal/domain/event"
	"reservas-web/internal/pkg/errs"
)

// Form field names as sent to the backend.
const (
	FieldName    = "nombre"
	FieldEmail   = "email"
	FieldSeats   = "cupos"
	FieldEventID = "evento_id"
)

// Request is a booking ready to be sent. It only exists between validation
// and submission.
type Request struct {
	name    string
	email   string
	seats   Seats
	eventID event.ID
}

// NewRequest validates presence of name, email and event. Seats are parsed
// without bounds checking. A failed check returns an *errs.FieldsError.
func NewRequest(form Form) (Request, error) {
	if err := errs.RequireFields(
		errs.Field{Name: FieldName, Value: form.Name},
		errs.Field{Name: FieldEmail, Value: form.Email},
		errs.Field{Name: FieldEventID, Value: form.EventID.String()},
	); err != nil {
		return Request{}, err
	}

	return Request{
		name:    form.Name,
		email:   form.Email,
		seats:   ParseSeats(form.Seats),
		eventID: form.EventID,
	}, nil
}

func (r Request) Name() string      { return r.name }
func (r Request) Email() string     { return r.email }
func (r Request) Seats() Seats      { return r.seats }
func (r Request) EventID() event.ID { return r.eventID }
