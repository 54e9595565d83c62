package shared

import (
	"context"
	"time"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: exclusive access to the store; writes staged by fn are kept only when it returns nil
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: single lookups outside a transaction
	Reads() Reads
}

type Tx interface {
	Reads() Reads
	Bookings() BookingRepository
	Contacts() ContactRepository
}

type Reads interface {
	ListEvents(ctx context.Context) ([]EventSnapshot, error)
	EventByID(ctx context.Context, id event.ID) (*EventSnapshot, error)
	ReservedSeats(ctx context.Context, id event.ID) (int, error)
	AccountByEmail(ctx context.Context, email user.Email) (*user.Account, error)
	AccountByID(ctx context.Context, id uuid.UUID) (*user.Account, error)
}

type BookingRepository interface {
	NextID(ctx context.Context) int64
	Create(ctx context.Context, booking *reservation.Booking) error
}

type ContactRepository interface {
	Create(ctx context.Context, msg contact.Message, receivedAt time.Time) error
}
