package staff

import (
	"context"
	"testing"
	"time"

	"nft-ticketing-backend/clock"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gateSecret = "JBSWY3DPEHPK3PXP"

func newAuth(t *testing.T, clk clock.Clock) *Authenticator {
	a, err := New(map[string]string{"gate-1": gateSecret}, []byte("session-key"), time.Hour, clk)
	require.NoError(t, err)
	return a
}

func TestLoginAndVerify(t *testing.T) {
	now := time.Now().UTC()
	a := newAuth(t, clock.NewFixed(now))

	code, err := totp.GenerateCode(gateSecret, now)
	require.NoError(t, err)

	s, err := a.Login(context.Background(), "gate-1", code)
	require.NoError(t, err)
	assert.Equal(t, "gate-1", s.StaffID)
	assert.Equal(t, now.Add(time.Hour), s.ExpiresAt)

	id, err := a.Verify(s.Token)
	require.NoError(t, err)
	assert.Equal(t, "gate-1", id)
}

func TestLoginRejects(t *testing.T) {
	now := time.Now().UTC()
	a := newAuth(t, clock.NewFixed(now))

	_, err := a.Login(context.Background(), "gate-9", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	stale, err := totp.GenerateCode(gateSecret, now.Add(-10*time.Minute))
	require.NoError(t, err)
	_, err = a.Login(context.Background(), "gate-1", stale)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login(context.Background(), "gate-1", "abc")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejects(t *testing.T) {
	past := time.Now().Add(-3 * time.Hour).UTC()
	a := newAuth(t, clock.NewFixed(past))

	code, err := totp.GenerateCode(gateSecret, past)
	require.NoError(t, err)
	expired, err := a.Login(context.Background(), "gate-1", code)
	require.NoError(t, err)

	_, err = a.Verify(expired.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = a.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)

	now := time.Now().UTC()
	other, err := New(map[string]string{"gate-1": gateSecret}, []byte("other-key"), time.Hour, clock.NewFixed(now))
	require.NoError(t, err)
	code, err = totp.GenerateCode(gateSecret, now)
	require.NoError(t, err)
	foreign, err := other.Login(context.Background(), "gate-1", code)
	require.NoError(t, err)

	_, err = newAuth(t, clock.NewFixed(now)).Verify(foreign.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifyRemovedStaff(t *testing.T) {
	now := time.Now().UTC()
	a := newAuth(t, clock.NewFixed(now))
	code, err := totp.GenerateCode(gateSecret, now)
	require.NoError(t, err)
	s, err := a.Login(context.Background(), "gate-1", code)
	require.NoError(t, err)

	b, err := New(map[string]string{"gate-2": gateSecret}, []byte("session-key"), time.Hour, clock.NewFixed(now))
	require.NoError(t, err)
	_, err = b.Verify(s.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, nil, time.Hour, clock.NewSystem())
	assert.Error(t, err)
	_, err = New(nil, []byte("k"), 0, clock.NewSystem())
	assert.Error(t, err)
	_, err = New(map[string]string{" ": "x"}, []byte("k"), time.Hour, clock.NewSystem())
	assert.Error(t, err)
}
