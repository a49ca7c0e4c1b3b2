package sale

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// CreateSaleMethod is the launchpad entry point the compiled parameters feed.
const CreateSaleMethod = "createEventSale"

const launchpadABI = `[{
	"type": "function",
	"name": "createEventSale",
	"stateMutability": "nonpayable",
	"inputs": [
		{"name": "info", "type": "tuple", "components": [
			{"name": "title", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "location", "type": "string"},
			{"name": "startTime", "type": "uint256"},
			{"name": "endTime", "type": "uint256"},
			{"name": "imageURI", "type": "string"},
			{"name": "organizer", "type": "address"},
			{"name": "platformFeePercent", "type": "uint256"},
			{"name": "royaltyFeePercent", "type": "uint256"},
			{"name": "maxTicketsPerWallet", "type": "uint256"}
		]},
		{"name": "tierIds", "type": "uint8[]"},
		{"name": "imageURIs", "type": "string[]"},
		{"name": "tiers", "type": "tuple[]", "components": [
			{"name": "price", "type": "uint256"},
			{"name": "supply", "type": "uint256"},
			{"name": "sold", "type": "uint256"},
			{"name": "soldOut", "type": "bool"}
		]},
		{"name": "paymentTokens", "type": "address[]"},
		{"name": "priceFeeds", "type": "address[]"}
	],
	"outputs": []
}]`

var launchpad = mustParseABI(launchpadABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("sale: invalid launchpad abi: %v", err))
	}
	return parsed
}

// LaunchpadABI exposes the parsed ABI, mostly for decoding in tests and tooling.
func LaunchpadABI() abi.ABI {
	return launchpad
}

type abiEventInfo struct {
	Title               string
	Description         string
	Location            string
	StartTime           *big.Int
	EndTime             *big.Int
	ImageURI            string
	Organizer           common.Address
	PlatformFeePercent  *big.Int
	RoyaltyFeePercent   *big.Int
	MaxTicketsPerWallet *big.Int
}

type abiTier struct {
	Price   *big.Int
	Supply  *big.Int
	Sold    *big.Int
	SoldOut bool
}

// EncodeCreateSale packs p as the positional arguments of createEventSale,
// method selector included.
func EncodeCreateSale(p *Params) ([]byte, error) {
	if p.Event.StartTime < 0 || p.Event.EndTime < 0 {
		return nil, fmt.Errorf("encodeCreateSale: event times must not precede the unix epoch")
	}

	info := abiEventInfo{
		Title:               p.Event.Title,
		Description:         p.Event.Description,
		Location:            p.Event.Location,
		StartTime:           big.NewInt(p.Event.StartTime),
		EndTime:             big.NewInt(p.Event.EndTime),
		ImageURI:            p.Event.ImageURI,
		Organizer:           p.Event.Organizer,
		PlatformFeePercent:  new(big.Int).SetUint64(p.Event.PlatformFeePercent),
		RoyaltyFeePercent:   new(big.Int).SetUint64(p.Event.RoyaltyFeePercent),
		MaxTicketsPerWallet: new(big.Int).SetUint64(p.Event.MaxTicketsPerWallet),
	}

	ids := make([]uint8, len(p.TierIDs))
	for i, id := range p.TierIDs {
		ids[i] = uint8(id)
	}

	tiers := make([]abiTier, len(p.Pricing))
	for i, t := range p.Pricing {
		if t.Price == nil {
			return nil, fmt.Errorf("encodeCreateSale: tier %d has no price", i)
		}
		if t.Price.Sign() < 0 || t.Price.BitLen() > maxPriceBits {
			return nil, fmt.Errorf("encodeCreateSale: tier %d price %s is out of uint256 range: %w", i, t.Price, ErrInvalidPriceFormat)
		}
		tiers[i] = abiTier{
			Price:   new(big.Int).Set(t.Price),
			Supply:  new(big.Int).SetUint64(t.Supply),
			Sold:    new(big.Int).SetUint64(t.Sold),
			SoldOut: t.SoldOut,
		}
	}

	data, err := launchpad.Pack(CreateSaleMethod, info, ids, p.ImageURIs, tiers, p.PaymentTokens, p.PriceFeeds)
	if err != nil {
		return nil, fmt.Errorf("encodeCreateSale: error packing arguments: %w", err)
	}
	return data, nil
}
