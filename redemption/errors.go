package redemption

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("ticket not found")
	ErrDuplicateTicket   = errors.New("ticket already registered")
	ErrAlreadyRedeemed   = errors.New("ticket already redeemed")
	ErrValidatorRequired = errors.New("validator identity required")
	ErrInvalidKey        = errors.New("contract address and token id are required")
)

// AlreadyRedeemedError carries the stored record so callers can report when
// and by whom the ticket was used. It matches ErrAlreadyRedeemed with errors.Is.
type AlreadyRedeemedError struct {
	Record Record
}

func (e *AlreadyRedeemedError) Error() string {
	if e.Record.UsedAt == nil {
		return ErrAlreadyRedeemed.Error()
	}
	return fmt.Sprintf("%s at %s by %s", ErrAlreadyRedeemed, e.Record.UsedAt.Format("2006-01-02T15:04:05Z07:00"), e.Record.ValidatedBy)
}

func (e *AlreadyRedeemedError) Is(target error) bool {
	return target == ErrAlreadyRedeemed
}
