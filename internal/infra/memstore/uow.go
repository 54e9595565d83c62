package memstore

import (
	"context"
	"time"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/infra"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/usecase/shared"
)

var errTransactionCanceled = errs.New("transaction canceled")

type memUoW struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &memUoW{store: store}
}

// Within holds the write lock for the duration of fn. Writes are staged on
// the transaction and applied only when fn returns nil and ctx is still live.
func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errTransactionCanceled)
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	tx := &memTx{store: u.store}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errTransactionCanceled)
	}
	tx.commit()
	return nil
}

func (u *memUoW) Reads() shared.Reads {
	return storeReads{store: u.store}
}

type memTx struct {
	store *Store

	pendingBookings []*reservation.Booking
	pendingContacts []ContactRecord
}

func (t *memTx) Reads() shared.Reads {
	return txReads{storeReads: storeReads{store: t.store, locked: true}, tx: t}
}

func (t *memTx) Bookings() shared.BookingRepository {
	return bookingRepository{tx: t}
}

func (t *memTx) Contacts() shared.ContactRepository {
	return contactRepository{tx: t}
}

func (t *memTx) commit() {
	t.store.bookings = append(t.store.bookings, t.pendingBookings...)
	t.store.contacts = append(t.store.contacts, t.pendingContacts...)
}

// txReads sees the transaction's own staged bookings.
type txReads struct {
	storeReads
	tx *memTx
}

func (r txReads) ReservedSeats(ctx context.Context, id event.ID) (int, error) {
	total, err := r.storeReads.ReservedSeats(ctx, id)
	if err != nil {
		return 0, err
	}
	for _, b := range r.tx.pendingBookings {
		if b.EventID().Equal(id) {
			total += b.Seats()
		}
	}
	return total, nil
}

type bookingRepository struct {
	tx *memTx
}

// NextID hands out ids from a sequence; ids of discarded transactions are
// not reused.
func (r bookingRepository) NextID(_ context.Context) int64 {
	id := r.tx.store.nextBookingID
	r.tx.store.nextBookingID++
	return id
}

func (r bookingRepository) Create(_ context.Context, booking *reservation.Booking) error {
	if _, ok := r.tx.store.eventIndex[booking.EventID().String()]; !ok {
		return infra.WrapStoreErr(r.tx.store.logger, infra.KindNotFound, "create booking for unknown event "+booking.EventID().String(), nil)
	}
	r.tx.pendingBookings = append(r.tx.pendingBookings, booking)
	return nil
}

type contactRepository struct {
	tx *memTx
}

func (r contactRepository) Create(_ context.Context, msg contact.Message, receivedAt time.Time) error {
	r.tx.pendingContacts = append(r.tx.pendingContacts, ContactRecord{Message: msg, ReceivedAt: receivedAt})
	return nil
}
