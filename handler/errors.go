package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"nft-ticketing-backend/event"
	"nft-ticketing-backend/locator"
	"nft-ticketing-backend/logger"
	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/response"
	"nft-ticketing-backend/sale"
	"nft-ticketing-backend/staff"
)

// sendError maps domain errors onto the HTTP error envelope.
func sendError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	var already *redemption.AlreadyRedeemedError
	switch {
	case errors.As(err, &already):
		response.AlreadyRedeemed(already.Record).Send(ctx, w)
	case errors.Is(err, redemption.ErrDuplicateTicket):
		response.DuplicateTicket().Send(ctx, w)
	case errors.Is(err, redemption.ErrNotFound):
		response.TicketNotFound().Send(ctx, w)
	case errors.Is(err, event.ErrNotFound):
		response.EventNotFound().Send(ctx, w)
	case errors.Is(err, locator.ErrInvalidReference):
		response.InvalidReference(err.Error()).Send(ctx, w)
	case errors.Is(err, staff.ErrInvalidCredentials):
		response.InvalidCredentials().Send(ctx, w)
	case errors.Is(err, redemption.ErrValidatorRequired):
		response.Unauthorized().Send(ctx, w)
	case errors.Is(err, sale.ErrInvalidPriceFormat),
		errors.Is(err, sale.ErrUnknownCurrency),
		errors.Is(err, sale.ErrTierImagesMismatch),
		errors.Is(err, event.ErrInvalidEvent),
		errors.Is(err, redemption.ErrInvalidKey):
		response.InvalidData(fmt.Sprintf("%s: %v", op, err)).Send(ctx, w)
	default:
		logger.Errorf(ctx, "%s: %+v", op, err)
		response.SomethingWrong().Send(ctx, w)
	}
}
