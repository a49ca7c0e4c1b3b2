package sale

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceDecimals matches the price oracle's fixed-point scale.
const PriceDecimals = 8

// maxPriceBits is the width of the uint256 price slot in the sale call.
const maxPriceBits = 256

// maxPriceDigits bounds the integer digits of a price so scaling never builds
// a number wider than a uint256 (2^256 has 78 digits).
const maxPriceDigits = 78 - PriceDecimals

// EncodePrice converts a decimal price into an integer scaled by 10^PriceDecimals.
// Fractions of a unit are dropped before scaling, so "19.99" encodes as 19 units.
// Exponent notation is not accepted, and the result must fit a uint256.
func EncodePrice(price string) (*big.Int, error) {
	if strings.ContainsAny(price, "eE") {
		return nil, fmt.Errorf("encodePrice: %q uses exponent notation: %w", price, ErrInvalidPriceFormat)
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("encodePrice: %q: %w", price, ErrInvalidPriceFormat)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("encodePrice: %q is negative: %w", price, ErrInvalidPriceFormat)
	}

	units := d.Truncate(0)
	if units.NumDigits() > maxPriceDigits {
		return nil, fmt.Errorf("encodePrice: %q is too large: %w", price, ErrInvalidPriceFormat)
	}
	scaled := units.Shift(PriceDecimals).BigInt()
	if scaled.BitLen() > maxPriceBits {
		return nil, fmt.Errorf("encodePrice: %q does not fit uint256: %w", price, ErrInvalidPriceFormat)
	}
	return scaled, nil
}
