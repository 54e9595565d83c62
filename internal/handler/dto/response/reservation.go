package response

import (
	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID        int64    `json:"id"`
	EventID   event.ID `json:"evento_id"`
	Name      string   `json:"nombre"`
	Email     string   `json:"email"`
	Seats     int      `json:"cupos"`
	CreatedAt string   `json:"fecha_creacion"`
}

// FromBooking copies through the booking's getters.
func FromBooking(b *reservation.Booking) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.CopyWithOption(&res, b, copyOption); err != nil {
		return nil, errs.Wrap(err, "convert booking")
	}
	return &res, nil
}
