//go:build unit || e2e

package builder

import (
	"time"

	"reservas-web/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationFormBuilder struct {
	Name    string
	Email   string
	Seats   string
	EventID string
}

func NewReservationFormBuilder() *ReservationFormBuilder {
	return &ReservationFormBuilder{
		Name:    "Ana Pérez",
		Email:   "ana@example.com",
		Seats:   "2",
		EventID: "7",
	}
}

func (r *ReservationFormBuilder) With(mutate func(*ReservationFormBuilder)) *ReservationFormBuilder {
	mutate(r)
	return r
}

func (r *ReservationFormBuilder) WithName(name string) *ReservationFormBuilder {
	r.Name = name
	return r
}

func (r *ReservationFormBuilder) WithEmail(email string) *ReservationFormBuilder {
	r.Email = email
	return r
}

func (r *ReservationFormBuilder) WithSeats(seats string) *ReservationFormBuilder {
	r.Seats = seats
	return r
}

func (r *ReservationFormBuilder) WithEventID(id string) *ReservationFormBuilder {
	r.EventID = id
	return r
}

// Build methods
func (r *ReservationFormBuilder) Build() reservation.Form {
	return reservation.Form{
		Name:    r.Name,
		Email:   r.Email,
		Seats:   r.Seats,
		EventID: EventID(r.EventID),
	}
}

func (r *ReservationFormBuilder) BuildRequest() reservation.Request {
	req, err := reservation.NewRequest(r.Build())
	if err != nil {
		panic(err)
	}
	return req
}

func (r *ReservationFormBuilder) BuildBooking(id int64, userID *uuid.UUID, now time.Time) *reservation.Booking {
	booking, err := reservation.NewBooking(id, r.BuildRequest(), userID, now)
	if err != nil {
		panic(err)
	}
	return booking
}

// BuildPayload returns the JSON body the browser page would post.
func (r *ReservationFormBuilder) BuildPayload() map[string]any {
	payload := map[string]any{
		"nombre":    r.Name,
		"email":     r.Email,
		"evento_id": eventIDValue(EventID(r.EventID)),
	}
	if n, ok := reservation.ParseSeats(r.Seats).Value(); ok {
		payload["cupos"] = n
	} else {
		payload["cupos"] = nil
	}
	return payload
}
