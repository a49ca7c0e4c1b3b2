package sale

import (
	"strconv"
	"strings"
)

// TierID is the on-chain tier enum. Values are positional and must not be reordered.
type TierID uint8

const (
	TierVIP TierID = iota
	TierStandard
	TierStanding
)

func (t TierID) String() string {
	switch t {
	case TierVIP:
		return "VIP"
	case TierStandard:
		return "STANDARD"
	default:
		return "STANDING"
	}
}

// MarshalJSON keeps []TierID a JSON array of numbers instead of base64.
func (t TierID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(t))), nil
}

// MapTier maps a tier name to its TierID. Only "vip" and "standard" are
// recognised (case-insensitive, no trimming); every other name lands in
// TierStanding.
func MapTier(name string) TierID {
	switch {
	case strings.EqualFold(name, "vip"):
		return TierVIP
	case strings.EqualFold(name, "standard"):
		return TierStandard
	default:
		return TierStanding
	}
}
