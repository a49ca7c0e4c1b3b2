// Package staff authenticates gate staff. A staff member proves possession of
// their TOTP secret once and receives a session token that is presented with
// every redemption; the token subject is recorded as the validator.
package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nft-ticketing-backend/clock"
	"nft-ticketing-backend/logger"

	"github.com/dgrijalva/jwt-go"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidCredentials = errors.New("invalid staff credentials")
	ErrInvalidSession     = errors.New("invalid staff session")
)

const issuer = "nft-ticketing-backend/staff"

var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// Session is returned on a successful login.
type Session struct {
	StaffID   string    `json:"staff_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Authenticator struct {
	secrets    map[string]string
	sessionKey []byte
	ttl        time.Duration
	clock      clock.Clock
}

// New builds an Authenticator over staff id -> base32 TOTP secret.
func New(secrets map[string]string, sessionKey []byte, ttl time.Duration, clk clock.Clock) (*Authenticator, error) {
	if len(sessionKey) == 0 {
		return nil, fmt.Errorf("new: session key is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("new: session ttl must be positive, got %s", ttl)
	}

	s := make(map[string]string, len(secrets))
	for id, secret := range secrets {
		id = strings.TrimSpace(id)
		if id == "" || secret == "" {
			return nil, fmt.Errorf("new: staff entries need an id and a secret")
		}
		s[id] = secret
	}
	return &Authenticator{secrets: s, sessionKey: sessionKey, ttl: ttl, clock: clk}, nil
}

// Login checks code against staffID's TOTP secret and opens a session.
func (a *Authenticator) Login(ctx context.Context, staffID, code string) (Session, error) {
	secret, ok := a.secrets[staffID]
	if !ok {
		logger.Warnf(ctx, "login: unknown staff id %q", staffID)
		return Session{}, ErrInvalidCredentials
	}

	now := a.clock.Now()
	valid, err := totp.ValidateCustom(code, secret, now, totpOpts)
	if err != nil {
		return Session{}, fmt.Errorf("login: %w: %v", ErrInvalidCredentials, err)
	}
	if !valid {
		logger.Warnf(ctx, "login: wrong code for staff %s", staffID)
		return Session{}, ErrInvalidCredentials
	}

	expires := now.Add(a.ttl)
	claims := jwt.StandardClaims{
		Subject:   staffID,
		Issuer:    issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: expires.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.sessionKey)
	if err != nil {
		return Session{}, fmt.Errorf("login: error signing session: %w", err)
	}

	logger.Infof(ctx, "login: staff %s signed in until %s", staffID, expires.Format(time.RFC3339))
	return Session{StaffID: staffID, Token: token, ExpiresAt: expires}, nil
}

// Verify returns the staff id a session token was issued to. Tokens of staff
// members removed from the configuration are rejected.
func (a *Authenticator) Verify(token string) (string, error) {
	var claims jwt.StandardClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.sessionKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !parsed.Valid || claims.Issuer != issuer || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	if _, ok := a.secrets[claims.Subject]; !ok {
		return "", fmt.Errorf("%w: staff %s is no longer configured", ErrInvalidSession, claims.Subject)
	}
	return claims.Subject, nil
}
