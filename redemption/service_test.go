package redemption_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"nft-ticketing-backend/logger"
	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.SetOutput(io.Discard)
}

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countingRecorder) Observe(operation, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[operation+"/"+result]++
}

var key = redemption.Key{ContractAddress: "0xABC", TokenID: "42"}

func newService(t *testing.T) (*redemption.Service, *stepClock, *countingRecorder) {
	t.Helper()
	clk := &stepClock{now: time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)}
	rec := &countingRecorder{counts: map[string]int{}}
	return redemption.NewService(memory.New(), clk, redemption.WithRecorder(rec)), clk, rec
}

func TestCreateRedeemRedeem(t *testing.T) {
	svc, clk, rec := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, key, "event-1", "tier-vip")
	require.NoError(t, err)
	assert.Equal(t, redemption.StateUnused, created.State())
	assert.Nil(t, created.UsedAt)

	clk.Advance(time.Hour)
	first, err := svc.Redeem(ctx, key, "gate-1")
	require.NoError(t, err)
	assert.Equal(t, redemption.StateUsed, first.State())
	require.NotNil(t, first.UsedAt)
	assert.True(t, clk.Now().Equal(*first.UsedAt))
	assert.Equal(t, "gate-1", first.ValidatedBy)

	clk.Advance(time.Minute)
	_, err = svc.Redeem(ctx, key, "gate-2")
	require.ErrorIs(t, err, redemption.ErrAlreadyRedeemed)

	var already *redemption.AlreadyRedeemedError
	require.True(t, errors.As(err, &already))
	assert.True(t, first.UsedAt.Equal(*already.Record.UsedAt))
	assert.Equal(t, "gate-1", already.Record.ValidatedBy)

	stored, err := svc.Lookup(ctx, key)
	require.NoError(t, err)
	assert.True(t, first.UsedAt.Equal(*stored.UsedAt))
	assert.Equal(t, "gate-1", stored.ValidatedBy)

	assert.Equal(t, 1, rec.counts["create/ok"])
	assert.Equal(t, 1, rec.counts["redeem/ok"])
	assert.Equal(t, 1, rec.counts["redeem/already_redeemed"])
}

func TestLookupIsIdempotent(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, key, "event-1", "tier-1")
	require.NoError(t, err)

	first, err := svc.Lookup(ctx, key)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.Lookup(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.False(t, first.IsUsed)
}

func TestErrors(t *testing.T) {
	svc, _, rec := newService(t)
	ctx := context.Background()

	_, err := svc.Lookup(ctx, key)
	assert.ErrorIs(t, err, redemption.ErrNotFound)

	_, err = svc.Redeem(ctx, key, "gate-1")
	assert.ErrorIs(t, err, redemption.ErrNotFound)

	_, err = svc.Create(ctx, redemption.Key{ContractAddress: " ", TokenID: "1"}, "e", "t")
	assert.ErrorIs(t, err, redemption.ErrInvalidKey)

	_, err = svc.Create(ctx, key, "event-1", "tier-1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, key, "event-2", "tier-2")
	assert.ErrorIs(t, err, redemption.ErrDuplicateTicket)

	kept, err := svc.Lookup(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "event-1", kept.EventID)

	_, err = svc.Redeem(ctx, key, "  ")
	assert.ErrorIs(t, err, redemption.ErrValidatorRequired)
	stillUnused, err := svc.Lookup(ctx, key)
	require.NoError(t, err)
	assert.False(t, stillUnused.IsUsed)

	assert.Equal(t, 1, rec.counts["create/duplicate"])
	assert.Equal(t, 1, rec.counts["lookup/not_found"])
}

func TestConcurrentRedeem(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, key, "event-1", "tier-1")
	require.NoError(t, err)

	const callers = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  []string
		rejected int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			staffID := fmt.Sprintf("gate-%d", i)
			_, err := svc.Redeem(ctx, key, staffID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, staffID)
			case errors.Is(err, redemption.ErrAlreadyRedeemed):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, callers-1, rejected)

	stored, err := svc.Lookup(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, winners[0], stored.ValidatedBy)
}
