package memstore

import (
	"context"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/user"
	"reservas-web/internal/infra"
	"reservas-web/internal/usecase/shared"

	"github.com/google/uuid"
)

// storeReads serves lookups. Outside a transaction each call takes the read
// lock; inside one the caller already holds the write lock.
type storeReads struct {
	store  *Store
	locked bool
}

func (r storeReads) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r storeReads) ListEvents(_ context.Context) ([]shared.EventSnapshot, error) {
	defer r.rlock()()
	return append([]shared.EventSnapshot(nil), r.store.events...), nil
}

func (r storeReads) EventByID(_ context.Context, id event.ID) (*shared.EventSnapshot, error) {
	defer r.rlock()()

	i, ok := r.store.eventIndex[id.String()]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "event "+id.String())
	}
	snapshot := r.store.events[i]
	return &snapshot, nil
}

func (r storeReads) ReservedSeats(_ context.Context, id event.ID) (int, error) {
	defer r.rlock()()

	total := 0
	for _, b := range r.store.bookings {
		if b.EventID().Equal(id) {
			total += b.Seats()
		}
	}
	return total, nil
}

func (r storeReads) AccountByEmail(_ context.Context, email user.Email) (*user.Account, error) {
	defer r.rlock()()

	id, ok := r.store.accountEmails[email.Value()]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "account "+email.Value())
	}
	return r.store.accounts[id], nil
}

func (r storeReads) AccountByID(_ context.Context, id uuid.UUID) (*user.Account, error) {
	defer r.rlock()()

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "account "+id.String())
	}
	return account, nil
}
