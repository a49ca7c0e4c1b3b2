package model

import (
	"time"

	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/staff"
)

type RegisterTicketRequest struct {
	ContractAddress string `json:"contract_address" validate:"required,eth_addr"`
	TokenID         string `json:"token_id" validate:"required,number"`
	EventID         string `json:"event_id" validate:"required"`
	TierID          string `json:"tier_id" validate:"required"`
}

func (r RegisterTicketRequest) Key() redemption.Key {
	return redemption.Key{ContractAddress: ChecksumAddress(r.ContractAddress), TokenID: r.TokenID}
}

// Ticket is returned on registration: the stored record and the reference to
// print on it.
type Ticket struct {
	Record    redemption.Record `json:"record"`
	Reference string            `json:"reference"`
}

// Validation is the gate-side view of a ticket.
type Validation struct {
	Record redemption.Record `json:"record"`
	State  redemption.State  `json:"state"`
}

func NewValidation(r redemption.Record) *Validation {
	return &Validation{Record: r, State: r.State()}
}

type StaffSessionRequest struct {
	StaffID string `json:"staff_id" validate:"required"`
	Code    string `json:"code" validate:"required,len=6,number"`
}

type Session struct {
	staff.Session
}

type Health struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
