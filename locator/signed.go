package locator

import (
	"fmt"
	"net/url"
	"time"

	"nft-ticketing-backend/redemption"

	"github.com/dgrijalva/jwt-go"
)

const paramToken = "token"

type referenceClaims struct {
	ContractAddress string `json:"ca"`
	TokenID         string `json:"tid"`
	jwt.StandardClaims
}

// Signed carries the identifiers in an HS256 JWT, so references cannot be
// forged without the secret. A zero ttl issues references that never expire.
type Signed struct {
	base   *url.URL
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigned(baseURL string, secret []byte, ttl time.Duration) (*Signed, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("newSigned: secret is required")
	}
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	return &Signed{base: base, secret: secret, ttl: ttl, now: time.Now}, nil
}

func (s *Signed) IssueReference(key redemption.Key) (string, error) {
	now := s.now()
	claims := referenceClaims{
		ContractAddress: key.ContractAddress,
		TokenID:         key.TokenID,
		StandardClaims:  jwt.StandardClaims{IssuedAt: now.Unix()},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = now.Add(s.ttl).Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("issueReference: error signing: %w", err)
	}
	return withQuery(s.base, url.Values{paramToken: {signed}}), nil
}

func (s *Signed) ResolveReference(ref string) (redemption.Key, error) {
	raw, err := queryParam(ref, paramToken)
	if err != nil {
		return redemption.Key{}, err
	}

	var claims referenceClaims
	_, err = jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return redemption.Key{}, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	if claims.ContractAddress == "" || claims.TokenID == "" {
		return redemption.Key{}, fmt.Errorf("%w: incomplete claims", ErrInvalidReference)
	}
	return redemption.Key{ContractAddress: claims.ContractAddress, TokenID: claims.TokenID}, nil
}
