package api

import (
	"errors"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/domain/user"
)

var (
	errMissingID    = errors.New("missing id")
	errMissingTitle = errors.New("missing titulo")
	errMissingDate  = errors.New("missing fecha")
	errMissingEmail = errors.New("missing email")
)

type eventResponse struct {
	ID     *event.ID   `json:"id"`
	Titulo *string     `json:"titulo"`
	Fecha  *event.Date `json:"fecha"`
}

func (r eventResponse) toDomain() (*event.Event, error) {
	switch {
	case r.ID == nil:
		return nil, errMissingID
	case r.Titulo == nil:
		return nil, errMissingTitle
	case r.Fecha == nil:
		return nil, errMissingDate
	}
	return event.NewEvent(*r.ID, *r.Titulo, *r.Fecha)
}

type reservationRequest struct {
	Nombre   string            `json:"nombre"`
	Email    string            `json:"email"`
	Cupos    reservation.Seats `json:"cupos"`
	EventoID event.ID          `json:"evento_id"`
}

func newReservationRequest(req reservation.Request) reservationRequest {
	return reservationRequest{
		Nombre:   req.Name(),
		Email:    req.Email(),
		Cupos:    req.Seats(),
		EventoID: req.EventID(),
	}
}

type userResponse struct {
	Email       *string `json:"email"`
	IsSuperuser bool    `json:"is_superuser"`
}

func (r userResponse) toDomain() (*user.Profile, error) {
	if r.Email == nil || *r.Email == "" {
		return nil, errMissingEmail
	}
	return &user.Profile{Email: *r.Email, IsSuperuser: r.IsSuperuser}, nil
}

type contactResponse struct {
	Success *bool `json:"success"`
}
