// Package storagetest holds the behaviour every redemption.Store must show.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"nft-ticketing-backend/redemption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store; the suite never reuses one between subtests.
type Factory func(t *testing.T) redemption.Store

var base = time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC)

// Run executes the store contract against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("create then get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		r := record("0xAbC0000000000000000000000000000000000001", "1")

		require.NoError(t, s.Create(ctx, r))

		got, err := s.Get(ctx, r.Key)
		require.NoError(t, err)
		assert.Equal(t, r.Key, got.Key)
		assert.Equal(t, "event-1", got.EventID)
		assert.Equal(t, "tier-1", got.TierID)
		assert.False(t, got.IsUsed)
		assert.Nil(t, got.UsedAt)
		assert.Empty(t, got.ValidatedBy)
		assert.True(t, r.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("get unknown key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(context.Background(), redemption.Key{ContractAddress: "0xdead", TokenID: "7"})
		assert.True(t, errors.Is(err, redemption.ErrNotFound))
	})

	t.Run("duplicate create keeps the first record", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		r := record("0xc0ffee", "42")
		require.NoError(t, s.Create(ctx, r))

		again := r
		again.EventID = "event-2"
		err := s.Create(ctx, again)
		assert.True(t, errors.Is(err, redemption.ErrDuplicateTicket), "got %v", err)

		got, err := s.Get(ctx, r.Key)
		require.NoError(t, err)
		assert.Equal(t, "event-1", got.EventID)
	})

	t.Run("same token id on another contract is a different ticket", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Create(ctx, record("0xaaa", "1")))
		require.NoError(t, s.Create(ctx, record("0xbbb", "1")))
	})

	t.Run("mark used once", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		r := record("0xc0ffee", "43")
		require.NoError(t, s.Create(ctx, r))

		first := base.Add(time.Hour)
		used, err := s.MarkUsed(ctx, r.Key, first, "gate-1")
		require.NoError(t, err)
		assert.True(t, used.IsUsed)
		require.NotNil(t, used.UsedAt)
		assert.True(t, first.Equal(*used.UsedAt))
		assert.Equal(t, "gate-1", used.ValidatedBy)

		_, err = s.MarkUsed(ctx, r.Key, first.Add(time.Minute), "gate-2")
		require.True(t, errors.Is(err, redemption.ErrAlreadyRedeemed), "got %v", err)

		var already *redemption.AlreadyRedeemedError
		require.True(t, errors.As(err, &already))
		require.NotNil(t, already.Record.UsedAt)
		assert.True(t, first.Equal(*already.Record.UsedAt))
		assert.Equal(t, "gate-1", already.Record.ValidatedBy)

		got, err := s.Get(ctx, r.Key)
		require.NoError(t, err)
		assert.True(t, first.Equal(*got.UsedAt))
		assert.Equal(t, "gate-1", got.ValidatedBy)
	})

	t.Run("mark used unknown key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.MarkUsed(context.Background(), redemption.Key{ContractAddress: "0xdead", TokenID: "8"}, base, "gate-1")
		assert.True(t, errors.Is(err, redemption.ErrNotFound), "got %v", err)
	})

	t.Run("concurrent mark used has exactly one winner", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		r := record("0xc0ffee", "44")
		require.NoError(t, s.Create(ctx, r))

		const callers = 16
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			winners []redemption.Record
			losses  int
			others  []error
		)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				got, err := s.MarkUsed(ctx, r.Key, base.Add(time.Duration(i)*time.Second), fmt.Sprintf("gate-%d", i))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					winners = append(winners, got)
				case errors.Is(err, redemption.ErrAlreadyRedeemed):
					losses++
				default:
					others = append(others, err)
				}
			}(i)
		}
		wg.Wait()

		require.Empty(t, others)
		require.Len(t, winners, 1)
		assert.Equal(t, callers-1, losses)

		got, err := s.Get(ctx, r.Key)
		require.NoError(t, err)
		assert.Equal(t, winners[0].ValidatedBy, got.ValidatedBy)
		assert.True(t, winners[0].UsedAt.Equal(*got.UsedAt))
	})
}

func record(contract, token string) redemption.Record {
	return redemption.Record{
		Key:       redemption.Key{ContractAddress: contract, TokenID: token},
		EventID:   "event-1",
		TierID:    "tier-1",
		CreatedAt: base,
	}
}
