package redemption

import (
	"strings"
	"time"
)

// Key identifies one minted token. It is never rewritten once a record exists.
type Key struct {
	ContractAddress string `json:"contract_address"`
	TokenID         string `json:"token_id"`
}

func (k Key) String() string {
	return k.ContractAddress + "/" + k.TokenID
}

func (k Key) valid() bool {
	return strings.TrimSpace(k.ContractAddress) != "" && strings.TrimSpace(k.TokenID) != ""
}

type State string

const (
	StateUnused State = "UNUSED"
	StateUsed   State = "USED"
)

// Record is the validation state of one minted ticket. UsedAt and ValidatedBy
// are set together with IsUsed and never afterwards.
type Record struct {
	Key
	EventID     string     `json:"event_id"`
	TierID      string     `json:"tier_id"`
	IsUsed      bool       `json:"is_used"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	ValidatedBy string     `json:"validated_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (r Record) State() State {
	if r.IsUsed {
		return StateUsed
	}
	return StateUnused
}
