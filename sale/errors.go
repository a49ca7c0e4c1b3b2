package sale

import "errors"

var (
	ErrInvalidPriceFormat = errors.New("invalid price format")
	ErrUnknownCurrency    = errors.New("unknown currency")
	ErrTierImagesMismatch = errors.New("tier images do not match tier count")
)
