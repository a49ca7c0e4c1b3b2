package memory

import (
	"context"
	"sync"
	"time"

	"nft-ticketing-backend/event"
	"nft-ticketing-backend/redemption"
)

// Store keeps tickets and events in process memory. A single mutex makes
// MarkUsed an atomic compare-and-set.
type Store struct {
	mu      sync.Mutex
	tickets map[redemption.Key]redemption.Record
	events  map[string]event.Event
}

func New() *Store {
	return &Store{
		tickets: make(map[redemption.Key]redemption.Record),
		events:  make(map[string]event.Event),
	}
}

func (s *Store) Create(_ context.Context, r redemption.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[r.Key]; ok {
		return redemption.ErrDuplicateTicket
	}
	s.tickets[r.Key] = copyRecord(r)
	return nil
}

func (s *Store) Get(_ context.Context, key redemption.Key) (redemption.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.tickets[key]
	if !ok {
		return redemption.Record{}, redemption.ErrNotFound
	}
	return copyRecord(r), nil
}

func (s *Store) MarkUsed(_ context.Context, key redemption.Key, usedAt time.Time, validatedBy string) (redemption.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.tickets[key]
	if !ok {
		return redemption.Record{}, redemption.ErrNotFound
	}
	if r.IsUsed {
		return redemption.Record{}, &redemption.AlreadyRedeemedError{Record: copyRecord(r)}
	}

	r.IsUsed = true
	r.UsedAt = &usedAt
	r.ValidatedBy = validatedBy
	s.tickets[key] = r
	return copyRecord(r), nil
}

func (s *Store) CreateEvent(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = copyEvent(e)
	return nil
}

func (s *Store) GetEvent(_ context.Context, id string) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return event.Event{}, event.ErrNotFound
	}
	return copyEvent(e), nil
}

func copyRecord(r redemption.Record) redemption.Record {
	if r.UsedAt != nil {
		t := *r.UsedAt
		r.UsedAt = &t
	}
	return r
}

func copyEvent(e event.Event) event.Event {
	e.Currencies = append([]string(nil), e.Currencies...)
	e.TicketTypes = append([]event.TicketType(nil), e.TicketTypes...)
	return e
}
