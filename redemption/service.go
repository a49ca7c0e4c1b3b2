package redemption

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nft-ticketing-backend/clock"
	"nft-ticketing-backend/logger"
)

// Store persists validation records. MarkUsed must flip IsUsed and set UsedAt
// and ValidatedBy in one atomic conditional step: of any number of concurrent
// calls for an unused key exactly one succeeds, the rest get an
// *AlreadyRedeemedError holding the winner's record.
type Store interface {
	Create(ctx context.Context, r Record) error
	Get(ctx context.Context, key Key) (Record, error)
	MarkUsed(ctx context.Context, key Key, usedAt time.Time, validatedBy string) (Record, error)
}

// Recorder receives the outcome of every operation, see the metrics package.
type Recorder interface {
	Observe(operation, result string)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, string) {}

type Service struct {
	store    Store
	clock    clock.Clock
	recorder Recorder
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func NewService(store Store, clk clock.Clock, opts ...Option) *Service {
	s := &Service{store: store, clock: clk, recorder: nopRecorder{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a freshly minted ticket as unused.
func (s *Service) Create(ctx context.Context, key Key, eventID, tierID string) (Record, error) {
	if !key.valid() {
		s.recorder.Observe("create", "invalid")
		return Record{}, ErrInvalidKey
	}

	r := Record{
		Key:       key,
		EventID:   eventID,
		TierID:    tierID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.Create(ctx, r); err != nil {
		if errors.Is(err, ErrDuplicateTicket) {
			logger.Errorf(ctx, "create: ticket %s registered twice, upstream mint bug: %+v", key, err)
			s.recorder.Observe("create", "duplicate")
			return Record{}, err
		}
		s.recorder.Observe("create", "error")
		return Record{}, fmt.Errorf("create: error storing ticket %s: %w", key, err)
	}

	s.recorder.Observe("create", "ok")
	return r, nil
}

// Lookup reads the current state without changing it.
func (s *Service) Lookup(ctx context.Context, key Key) (Record, error) {
	if !key.valid() {
		return Record{}, ErrInvalidKey
	}
	r, err := s.store.Get(ctx, key)
	if err != nil {
		s.recorder.Observe("lookup", result(err))
		if errors.Is(err, ErrNotFound) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("lookup: error reading ticket %s: %w", key, err)
	}
	s.recorder.Observe("lookup", "ok")
	return r, nil
}

// Redeem marks the ticket used by validatedBy. It is the only way a record
// changes after creation.
func (s *Service) Redeem(ctx context.Context, key Key, validatedBy string) (Record, error) {
	if !key.valid() {
		return Record{}, ErrInvalidKey
	}
	if strings.TrimSpace(validatedBy) == "" {
		return Record{}, ErrValidatorRequired
	}

	r, err := s.store.MarkUsed(ctx, key, s.clock.Now(), validatedBy)
	if err != nil {
		s.recorder.Observe("redeem", result(err))
		switch {
		case errors.Is(err, ErrAlreadyRedeemed):
			logger.Warnf(ctx, "redeem: ticket %s rejected, %v", key, err)
			return Record{}, err
		case errors.Is(err, ErrNotFound):
			return Record{}, err
		default:
			return Record{}, fmt.Errorf("redeem: error updating ticket %s: %w", key, err)
		}
	}

	logger.Infof(ctx, "redeem: ticket %s redeemed by %s", key, validatedBy)
	s.recorder.Observe("redeem", "ok")
	return r, nil
}

func result(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyRedeemed):
		return "already_redeemed"
	case errors.Is(err, ErrDuplicateTicket):
		return "duplicate"
	default:
		return "error"
	}
}
