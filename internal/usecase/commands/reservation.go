package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"sync"

	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/pkg/errs"
)

type ReservationCommands interface {
	Submit(ctx context.Context, form reservation.Form) (reservation.Result, error)
	Phase() reservation.Phase
}

type reservationCommandsImpl struct {
	gateway ReservationGateway
	logger  *slog.Logger

	mu    sync.Mutex
	phase reservation.Phase
}

func NewReservationCommands(gateway ReservationGateway, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{
		gateway: gateway,
		logger:  logger,
		phase:   reservation.PhaseIdle,
	}
}

// Submit validates the form and, when complete, posts it once. Every outcome
// the user must see is returned as a Result; the error is reserved for a
// submission already in flight and for cancellation of ctx.
func (r *reservationCommandsImpl) Submit(ctx context.Context, form reservation.Form) (reservation.Result, error) {
	req, err := reservation.NewRequest(form)
	if err != nil {
		return reservation.ValidationResult(), nil
	}

	if !r.begin() {
		return reservation.Result{}, errs.ErrSubmissionInProgress
	}
	defer r.finish()

	err = r.gateway.CreateReservation(ctx, req)
	switch {
	case err == nil:
		r.logger.Info("Reservation created", "event_id", req.EventID().String())
		return reservation.SuccessResult(), nil
	case ctx.Err() != nil:
		return reservation.Result{}, errs.Wrap(ctx.Err(), "submit reservation")
	case errs.Is(err, errs.ErrRejected):
		detail, _ := errs.RejectionDetail(err)
		r.logger.Info("Reservation rejected",
			"event_id", req.EventID().String(),
			"status_code", errs.RejectionStatus(err),
			"detail", detail,
		)
		return reservation.RejectedResult(detail), nil
	default:
		r.logger.Warn("Reservation request failed", "error", err)
		return reservation.ConnectionResult(), nil
	}
}

func (r *reservationCommandsImpl) Phase() reservation.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *reservationCommandsImpl) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == reservation.PhaseSubmitting {
		return false
	}
	r.phase = reservation.PhaseSubmitting
	return true
}

func (r *reservationCommandsImpl) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phase = reservation.PhaseDone
}
