package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nft-ticketing-backend/clock"
	"nft-ticketing-backend/sale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	mu     sync.Mutex
	events map[string]Event
}

func (m *mapStore) CreateEvent(_ context.Context, e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[e.ID] = e
	return nil
}

func (m *mapStore) GetEvent(_ context.Context, id string) (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return e, nil
}

var now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestEvent() Event {
	return Event{
		Title:            "Harbour Lights",
		StartsAt:         now.Add(24 * time.Hour),
		EndsAt:           now.Add(28 * time.Hour),
		ImageURI:         "banner.png",
		OrganizerAddress: "0x00000000000000000000000000000000000000b0",
		Currencies:       []string{"USDC"},
		TicketTypes: []TicketType{
			{Name: "VIP", Price: "100", TotalSupply: 10},
			{Name: "General", Price: "20", TotalSupply: 500},
		},
	}
}

func TestServiceCreateAndGet(t *testing.T) {
	svc := NewEvent(&mapStore{events: map[string]Event{}}, clock.NewFixed(now))

	created, err := svc.Create(context.Background(), newTestEvent())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	for _, tt := range created.TicketTypes {
		assert.NotEmpty(t, tt.ID)
		assert.Equal(t, created.ID, tt.EventID)
	}

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestServiceCreateValidates(t *testing.T) {
	svc := NewEvent(&mapStore{events: map[string]Event{}}, clock.NewFixed(now))

	e := newTestEvent()
	e.EndsAt = e.StartsAt
	_, err := svc.Create(context.Background(), e)
	assert.True(t, errors.Is(err, ErrInvalidEvent))

	e = newTestEvent()
	e.TicketTypes = nil
	_, err = svc.Create(context.Background(), e)
	assert.True(t, errors.Is(err, ErrInvalidEvent))

	e = newTestEvent()
	e.TicketTypes[1].Price = "free"
	_, err = svc.Create(context.Background(), e)
	assert.True(t, errors.Is(err, sale.ErrInvalidPriceFormat))
}

func TestSaleInput(t *testing.T) {
	e := newTestEvent()
	in := SaleInput(e)
	require.Len(t, in.Tiers, 2)
	assert.Equal(t, "VIP", in.Tiers[0].Name)
	assert.Equal(t, uint64(500), in.Tiers[1].Supply)
	assert.Nil(t, in.TierImages)
	assert.Equal(t, "banner.png", in.Event.ImageURI)

	e.TicketTypes[0].ImageURI = "vip.png"
	e.TicketTypes[1].ImageURI = "ga.png"
	in = SaleInput(e)
	assert.Equal(t, []string{"vip.png", "ga.png"}, in.TierImages)
}
