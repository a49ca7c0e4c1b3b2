package model

import (
	"time"

	"nft-ticketing-backend/sale"
)

// EventDetails is the event metadata shared by sale compilation and event creation.
type EventDetails struct {
	Title               string    `json:"title" validate:"required"`
	Description         string    `json:"description"`
	Location            string    `json:"location"`
	StartsAt            time.Time `json:"starts_at" validate:"required"`
	EndsAt              time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	ImageURI            string    `json:"image_uri" validate:"omitempty,uri"`
	OrganizerAddress    string    `json:"organizer_address" validate:"required,eth_addr"`
	PlatformFeePercent  uint64    `json:"platform_fee_percent" validate:"lte=100"`
	RoyaltyFeePercent   uint64    `json:"royalty_fee_percent" validate:"lte=100"`
	MaxTicketsPerWallet uint64    `json:"max_tickets_per_wallet"`
}

type TierRequest struct {
	Name   string `json:"name" validate:"required"`
	Price  string `json:"price" validate:"required"`
	Supply uint64 `json:"supply"`
}

type CompileSaleRequest struct {
	Event      EventDetails  `json:"event"`
	Tiers      []TierRequest `json:"tiers" validate:"required,min=1,dive"`
	TierImages []string      `json:"tier_images"`
	Currencies []string      `json:"currencies"`
}

// Input converts the request to compiler input. Addresses are parsed here so
// the compiler only ever sees checksummed values.
func (r CompileSaleRequest) Input() sale.Input {
	in := sale.Input{
		Event:      r.Event.saleEvent(),
		Tiers:      make([]sale.TierInput, len(r.Tiers)),
		TierImages: r.TierImages,
		Currencies: r.Currencies,
	}
	for i, t := range r.Tiers {
		in.Tiers[i] = sale.TierInput{Name: t.Name, Price: t.Price, Supply: t.Supply}
	}
	return in
}

func (e EventDetails) saleEvent() sale.EventInput {
	return sale.EventInput{
		Title:               e.Title,
		Description:         e.Description,
		Location:            e.Location,
		StartsAt:            e.StartsAt,
		EndsAt:              e.EndsAt,
		ImageURI:            e.ImageURI,
		Organizer:           Address(e.OrganizerAddress),
		PlatformFeePercent:  e.PlatformFeePercent,
		RoyaltyFeePercent:   e.RoyaltyFeePercent,
		MaxTicketsPerWallet: e.MaxTicketsPerWallet,
	}
}

// Sale is the compiled parameter bundle plus the ready-to-send calldata.
type Sale struct {
	Params   *sale.Params `json:"params"`
	Method   string       `json:"method"`
	Calldata string       `json:"calldata"`
}
