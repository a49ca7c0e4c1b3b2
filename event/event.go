package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nft-ticketing-backend/clock"
	"nft-ticketing-backend/sale"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("event not found")
	ErrInvalidEvent = errors.New("invalid event")
)

// Event is an organizer's event as held by the record store.
type Event struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	Location            string       `json:"location"`
	StartsAt            time.Time    `json:"starts_at"`
	EndsAt              time.Time    `json:"ends_at"`
	ImageURI            string       `json:"image_uri,omitempty"`
	OrganizerAddress    string       `json:"organizer_address"`
	TicketContract      string       `json:"ticket_contract,omitempty"`
	LaunchpadContract   string       `json:"launchpad_contract,omitempty"`
	MarketContract      string       `json:"market_contract,omitempty"`
	PlatformFeePercent  uint64       `json:"platform_fee_percent"`
	RoyaltyFeePercent   uint64       `json:"royalty_fee_percent"`
	MaxTicketsPerWallet uint64       `json:"max_tickets_per_wallet"`
	Currencies          []string     `json:"currencies"`
	TicketTypes         []TicketType `json:"ticket_types"`
	CreatedAt           time.Time    `json:"created_at"`
}

// TicketType is one tier of an event. Position in Event.TicketTypes is the
// on-chain tier order.
type TicketType struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	TotalSupply uint64 `json:"total_supply"`
	Sold        uint64 `json:"sold"`
	ImageURI    string `json:"image_uri,omitempty"`
}

type Store interface {
	CreateEvent(ctx context.Context, e Event) error
	GetEvent(ctx context.Context, id string) (Event, error)
}

// NewEvent returns the event service over store.
func NewEvent(store Store, clk clock.Clock) *Service {
	return &Service{store: store, clock: clk}
}

type Service struct {
	store Store
	clock clock.Clock
}

// Create assigns ids and persists e with its ticket types.
func (s *Service) Create(ctx context.Context, e Event) (Event, error) {
	if !e.EndsAt.After(e.StartsAt) {
		return Event{}, fmt.Errorf("create: event must end after it starts: %w", ErrInvalidEvent)
	}
	if len(e.TicketTypes) == 0 {
		return Event{}, fmt.Errorf("create: at least one ticket type is required: %w", ErrInvalidEvent)
	}
	for i, tt := range e.TicketTypes {
		if _, err := sale.EncodePrice(tt.Price); err != nil {
			return Event{}, fmt.Errorf("create: ticket type %d: %w", i, err)
		}
	}

	e.ID = uuid.NewString()
	e.CreatedAt = s.clock.Now()
	for i := range e.TicketTypes {
		e.TicketTypes[i].ID = uuid.NewString()
		e.TicketTypes[i].EventID = e.ID
	}

	if err := s.store.CreateEvent(ctx, e); err != nil {
		return Event{}, fmt.Errorf("create: error storing event: %w", err)
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id string) (Event, error) {
	e, err := s.store.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Event{}, err
		}
		return Event{}, fmt.Errorf("get: error reading event %s: %w", id, err)
	}
	return e, nil
}

// SaleInput turns a stored event into compiler input. Per-tier images are used
// only when every ticket type has one, otherwise the event image is the fallback.
func SaleInput(e Event) sale.Input {
	in := sale.Input{
		Event: sale.EventInput{
			Title:               e.Title,
			Description:         e.Description,
			Location:            e.Location,
			StartsAt:            e.StartsAt,
			EndsAt:              e.EndsAt,
			ImageURI:            e.ImageURI,
			Organizer:           common.HexToAddress(e.OrganizerAddress),
			PlatformFeePercent:  e.PlatformFeePercent,
			RoyaltyFeePercent:   e.RoyaltyFeePercent,
			MaxTicketsPerWallet: e.MaxTicketsPerWallet,
		},
		Tiers:      make([]sale.TierInput, len(e.TicketTypes)),
		Currencies: e.Currencies,
	}

	images := make([]string, len(e.TicketTypes))
	complete := len(e.TicketTypes) > 0
	for i, tt := range e.TicketTypes {
		in.Tiers[i] = sale.TierInput{Name: tt.Name, Price: tt.Price, Supply: tt.TotalSupply}
		images[i] = tt.ImageURI
		if tt.ImageURI == "" {
			complete = false
		}
	}
	if complete {
		in.TierImages = images
	}
	return in
}
