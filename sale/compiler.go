package sale

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EventInput is the event part of a sale compilation.
type EventInput struct {
	Title               string
	Description         string
	Location            string
	StartsAt            time.Time
	EndsAt              time.Time
	ImageURI            string
	Organizer           common.Address
	PlatformFeePercent  uint64
	RoyaltyFeePercent   uint64
	MaxTicketsPerWallet uint64
}

type TierInput struct {
	Name   string
	Price  string
	Supply uint64
}

// Input is everything needed to build one sale. TierImages, when non-empty,
// must have one entry per tier.
type Input struct {
	Event      EventInput
	Tiers      []TierInput
	TierImages []string
	Currencies []string
}

// EventInfo is the event metadata tuple of the sale creation call.
type EventInfo struct {
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Location            string         `json:"location"`
	StartTime           int64          `json:"start_time"`
	EndTime             int64          `json:"end_time"`
	ImageURI            string         `json:"image_uri"`
	Organizer           common.Address `json:"organizer"`
	PlatformFeePercent  uint64         `json:"platform_fee_percent"`
	RoyaltyFeePercent   uint64         `json:"royalty_fee_percent"`
	MaxTicketsPerWallet uint64         `json:"max_tickets_per_wallet"`
}

type TierPricing struct {
	Price   *big.Int `json:"price"`
	Supply  uint64   `json:"supply"`
	Sold    uint64   `json:"sold"`
	SoldOut bool     `json:"sold_out"`
}

// Params is the compiled, index-aligned argument bundle. TierIDs, ImageURIs and
// Pricing describe the same tier at each index; PaymentTokens and PriceFeeds
// describe the same currency at each index.
type Params struct {
	Event         EventInfo        `json:"event"`
	TierIDs       []TierID         `json:"tier_ids"`
	ImageURIs     []string         `json:"image_uris"`
	Pricing       []TierPricing    `json:"pricing"`
	PaymentTokens []common.Address `json:"payment_tokens"`
	PriceFeeds    []common.Address `json:"price_feeds"`
}

// Compiler holds only read-only state and is safe for concurrent use.
type Compiler struct {
	catalog *Catalog
	policy  UnknownCurrencyPolicy
}

type CompilerOption func(*Compiler)

// WithCurrencyPolicy overrides the default permissive policy.
func WithCurrencyPolicy(p UnknownCurrencyPolicy) CompilerOption {
	return func(c *Compiler) {
		if p != nil {
			c.policy = p
		}
	}
}

func NewCompiler(catalog *Catalog, opts ...CompilerOption) *Compiler {
	c := &Compiler{catalog: catalog, policy: Permissive()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile builds Params from in. Every per-tier slice is produced from the same
// pass over in.Tiers.
func (c *Compiler) Compile(in Input) (*Params, error) {
	n := len(in.Tiers)
	if len(in.TierImages) > 0 && len(in.TierImages) != n {
		return nil, fmt.Errorf("compile: %d images for %d tiers: %w", len(in.TierImages), n, ErrTierImagesMismatch)
	}

	p := &Params{
		Event:     eventInfo(in.Event),
		TierIDs:   make([]TierID, 0, n),
		ImageURIs: make([]string, 0, n),
		Pricing:   make([]TierPricing, 0, n),
	}

	for i, t := range in.Tiers {
		price, err := EncodePrice(t.Price)
		if err != nil {
			return nil, fmt.Errorf("compile: tier %d (%s): %w", i, t.Name, err)
		}
		p.TierIDs = append(p.TierIDs, MapTier(t.Name))
		p.ImageURIs = append(p.ImageURIs, tierImage(in, i))
		p.Pricing = append(p.Pricing, TierPricing{Price: price, Supply: t.Supply})
	}

	tokens, feeds, err := ResolvePayments(c.catalog, in.Currencies, c.policy)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	p.PaymentTokens = tokens
	p.PriceFeeds = feeds

	return p, nil
}

func tierImage(in Input, i int) string {
	if len(in.TierImages) > 0 {
		return in.TierImages[i]
	}
	return in.Event.ImageURI
}

func eventInfo(e EventInput) EventInfo {
	return EventInfo{
		Title:               e.Title,
		Description:         e.Description,
		Location:            e.Location,
		StartTime:           e.StartsAt.Unix(),
		EndTime:             e.EndsAt.Unix(),
		ImageURI:            e.ImageURI,
		Organizer:           e.Organizer,
		PlatformFeePercent:  e.PlatformFeePercent,
		RoyaltyFeePercent:   e.RoyaltyFeePercent,
		MaxTicketsPerWallet: e.MaxTicketsPerWallet,
	}
}
