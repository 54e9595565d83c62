package memstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/domain/user"
	"reservas-web/internal/infra"
	"reservas-web/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps the development backend's data in memory. All access goes
// through the unit of work so bookings are checked and written atomically.
type Store struct {
	mu     sync.RWMutex
	logger *slog.Logger

	events        []shared.EventSnapshot
	eventIndex    map[string]int
	accounts      map[uuid.UUID]*user.Account
	accountEmails map[string]uuid.UUID
	bookings      []*reservation.Booking
	contacts      []ContactRecord
	nextBookingID int64
}

// ContactRecord is a contact message kept in the inbox.
type ContactRecord struct {
	Message    contact.Message
	ReceivedAt time.Time
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		logger:        logger,
		eventIndex:    make(map[string]int),
		accounts:      make(map[uuid.UUID]*user.Account),
		accountEmails: make(map[string]uuid.UUID),
		nextBookingID: 1,
	}
}

func (s *Store) AddEvent(_ context.Context, e shared.EventSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := e.ID.String()
	if _, exists := s.eventIndex[key]; exists {
		return infra.NewStoreErr(infra.KindDuplicateKey, "event "+key+" already exists")
	}
	s.eventIndex[key] = len(s.events)
	s.events = append(s.events, e)
	return nil
}

func (s *Store) AddAccount(_ context.Context, account *user.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := account.Email().Value()
	if _, exists := s.accountEmails[email]; exists {
		return infra.NewStoreErr(infra.KindDuplicateKey, "account "+email+" already exists")
	}
	s.accounts[account.ID()] = account
	s.accountEmails[email] = account.ID()
	return nil
}

// Bookings returns a copy of the accepted bookings in creation order.
func (s *Store) Bookings() []*reservation.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*reservation.Booking(nil), s.bookings...)
}

// Contacts returns a copy of the inbox in arrival order.
func (s *Store) Contacts() []ContactRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ContactRecord(nil), s.contacts...)
}
