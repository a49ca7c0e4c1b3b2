package model

import (
	"strings"

	"nft-ticketing-backend/event"
)

type TicketTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Currency    string `json:"currency" validate:"required"`
	TotalSupply uint64 `json:"total_supply" validate:"required"`
	ImageURI    string `json:"image_uri" validate:"omitempty,uri"`
}

type CreateEventRequest struct {
	EventDetails
	TicketContract    string              `json:"ticket_contract" validate:"omitempty,eth_addr"`
	LaunchpadContract string              `json:"launchpad_contract" validate:"omitempty,eth_addr"`
	MarketContract    string              `json:"market_contract" validate:"omitempty,eth_addr"`
	Currencies        []string            `json:"currencies"`
	TicketTypes       []TicketTypeRequest `json:"ticket_types" validate:"required,min=1,dive"`
}

func (r CreateEventRequest) Event() event.Event {
	e := event.Event{
		Title:               r.Title,
		Description:         r.Description,
		Location:            r.Location,
		StartsAt:            r.StartsAt.UTC(),
		EndsAt:              r.EndsAt.UTC(),
		ImageURI:            r.ImageURI,
		OrganizerAddress:    ChecksumAddress(r.OrganizerAddress),
		TicketContract:      ChecksumAddress(r.TicketContract),
		LaunchpadContract:   ChecksumAddress(r.LaunchpadContract),
		MarketContract:      ChecksumAddress(r.MarketContract),
		PlatformFeePercent:  r.PlatformFeePercent,
		RoyaltyFeePercent:   r.RoyaltyFeePercent,
		MaxTicketsPerWallet: r.MaxTicketsPerWallet,
		Currencies:          r.Currencies,
		TicketTypes:         make([]event.TicketType, len(r.TicketTypes)),
	}
	for i, tt := range r.TicketTypes {
		e.TicketTypes[i] = event.TicketType{
			Name:        tt.Name,
			Description: tt.Description,
			Price:       tt.Price,
			Currency:    strings.ToUpper(strings.TrimSpace(tt.Currency)),
			TotalSupply: tt.TotalSupply,
			ImageURI:    tt.ImageURI,
		}
	}
	return e
}

type Event struct {
	event.Event
}
