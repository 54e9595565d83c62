package request

import (
	"strconv"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/pkg/patch"
)

type CreateReservationRequest struct {
	Nombre   string    `json:"nombre" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Cupos    *int      `json:"cupos" binding:"required,gte=1"`
	EventoID *event.ID `json:"evento_id" binding:"required"`
}

func (r *CreateReservationRequest) ToDomain() (reservation.Request, error) {
	form := reservation.Form{
		Name:    r.Nombre,
		Email:   r.Email,
		EventID: patch.Coalesce(r.EventoID, event.ID{}),
	}
	if r.Cupos != nil {
		form.Seats = strconv.Itoa(*r.Cupos)
	}
	return reservation.NewRequest(form)
}
