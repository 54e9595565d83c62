package backend

//go:generate mockgen -source=bookings.go -destination=../../../tests/mock/backend/bookings_mock.go -package=backendmock

import (
	"context"
	"log/slog"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/infra"
	"reservas-web/internal/pkg/clock"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound  = errs.New("event not found")
	ErrBookingInvalid = errs.New("booking invalid")
)

type BookingCommands interface {
	Create(ctx context.Context, req reservation.Request, userID *uuid.UUID) (*reservation.Booking, error)
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

// Create books seats for an existing event that is not already over. An event
// dated before today is reported like an unknown one. Capacity is checked against the
// seats already booked inside the same transaction, so two concurrent
// bookings can never oversell the event.
func (b *bookingCommandsImpl) Create(ctx context.Context, req reservation.Request, userID *uuid.UUID) (*reservation.Booking, error) {
	var booking *reservation.Booking

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().EventByID(ctx, req.EventID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEventNotFound)
			}
			return err
		}
		if snapshot.Date.Before(event.DateOf(clock.Today(b.clock))) {
			return errs.Mark(errs.Wrapf(reservation.ErrEventUnavailable, "event %s on %s", snapshot.ID, snapshot.Date), ErrEventNotFound)
		}

		booking, err = reservation.NewBooking(tx.Bookings().NextID(ctx), req, userID, b.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrBookingInvalid)
		}

		reserved, err := tx.Reads().ReservedSeats(ctx, snapshot.ID)
		if err != nil {
			return err
		}
		if err := reservation.CheckAvailability(snapshot.Capacity, reserved, booking.Seats()); err != nil {
			return err
		}

		return tx.Bookings().Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	b.logger.Info("Booking created",
		"booking_id", booking.ID(),
		"event_id", booking.EventID().String(),
		"seats", booking.Seats(),
	)
	return booking, nil
}
