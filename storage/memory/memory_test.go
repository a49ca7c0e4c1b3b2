package memory

import (
	"context"
	"errors"
	"testing"

	"nft-ticketing-backend/event"
	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) redemption.Store { return New() })
}

func TestStoreEvents(t *testing.T) {
	s := New()
	ctx := context.Background()

	e := event.Event{ID: "e1", Title: "Show", Currencies: []string{"USDC"}, TicketTypes: []event.TicketType{{ID: "t1", Name: "VIP"}}}
	require.NoError(t, s.CreateEvent(ctx, e))

	got, err := s.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, e, got)

	got.TicketTypes[0].Name = "changed"
	again, err := s.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "VIP", again.TicketTypes[0].Name)

	_, err = s.GetEvent(ctx, "e2")
	assert.True(t, errors.Is(err, event.ErrNotFound))
}
