package reservation

import (
	"errors"
	"fmt"
	"time"

	"reservas-web/internal/domain/event"

	"github.com/google/uuid"
)

var (
	ErrInvalidSeats     = errors.New("seat count must be a positive integer")
	ErrNotEnoughSeats   = errors.New("not enough seats available")
	ErrEventUnavailable = errors.New("event not available")
)

// Booking is a reservation accepted by the development backend.
type Booking struct {
	id        int64
	eventID   event.ID
	name      string
	email     string
	seats     int
	userID    *uuid.UUID
	createdAt time.Time
}

func NewBooking(id int64, req Request, userID *uuid.UUID, now time.Time) (*Booking, error) {
	seats, ok := req.Seats().Value()
	if !ok || seats < 1 {
		return nil, ErrInvalidSeats
	}
	return &Booking{
		id:        id,
		eventID:   req.EventID(),
		name:      req.Name(),
		email:     req.Email(),
		seats:     seats,
		userID:    userID,
		createdAt: now,
	}, nil
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) EventID() event.ID    { return b.eventID }
func (b *Booking) Name() string         { return b.name }
func (b *Booking) Email() string        { return b.email }
func (b *Booking) Seats() int           { return b.seats }
func (b *Booking) UserID() *uuid.UUID   { return b.userID }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// AvailabilityError reports how many seats were left when a booking did not fit.
type AvailabilityError struct {
	Available int
}

func (e *AvailabilityError) Error() string {
	if e.Available <= 0 {
		return "Sin cupos disponibles"
	}
	return fmt.Sprintf("Cupos disponibles: %d", e.Available)
}

func (e *AvailabilityError) Is(target error) bool {
	return target == ErrNotEnoughSeats
}

// CheckAvailability fails with *AvailabilityError when requested seats exceed
// what is left of capacity.
func CheckAvailability(capacity, reserved, requested int) error {
	available := capacity - reserved
	if available < 0 {
		available = 0
	}
	if requested > available {
		return &AvailabilityError{Available: available}
	}
	return nil
}
