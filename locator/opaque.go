package locator

import (
	"encoding/json"
	"fmt"
	"net/url"

	"nft-ticketing-backend/codec"
	"nft-ticketing-backend/redemption"
)

const paramRef = "ref"

// Opaque seals the identifiers with AES-GCM; the reference reveals nothing
// about the ticket and fails to resolve if altered.
type Opaque struct {
	base *url.URL
	key  []byte
}

func NewOpaque(baseURL, secret string) (*Opaque, error) {
	if secret == "" {
		return nil, fmt.Errorf("newOpaque: secret is required")
	}
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	return &Opaque{base: base, key: codec.DeriveKey(secret)}, nil
}

func (o *Opaque) IssueReference(key redemption.Key) (string, error) {
	payload, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("issueReference: %w", err)
	}
	sealed, err := codec.Seal(o.key, payload)
	if err != nil {
		return "", fmt.Errorf("issueReference: %w", err)
	}
	return withQuery(o.base, url.Values{paramRef: {sealed}}), nil
}

func (o *Opaque) ResolveReference(ref string) (redemption.Key, error) {
	sealed, err := queryParam(ref, paramRef)
	if err != nil {
		return redemption.Key{}, err
	}
	payload, err := codec.Open(o.key, sealed)
	if err != nil {
		return redemption.Key{}, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}

	var key redemption.Key
	if err := json.Unmarshal(payload, &key); err != nil {
		return redemption.Key{}, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return key, nil
}
