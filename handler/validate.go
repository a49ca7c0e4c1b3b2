package handler

import (
	"net/http"

	c "nft-ticketing-backend/context"
	"nft-ticketing-backend/model"
	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/response"

	"github.com/ethereum/go-ethereum/common"
)

// resolveKey resolves the request reference and checksums a hex contract
// address so lookups match the keys written at registration.
func resolveKey(resolver ReferenceResolver, r *http.Request) (redemption.Key, error) {
	key, err := resolver.ResolveReference(r.URL.RequestURI())
	if err != nil {
		return key, err
	}
	if common.IsHexAddress(key.ContractAddress) {
		key.ContractAddress = model.ChecksumAddress(key.ContractAddress)
	}
	return key, nil
}

// LookupTicket resolves the scanned reference and reports the ticket state
// without changing it.
func LookupTicket(resolver ReferenceResolver, tickets Tickets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key, err := resolveKey(resolver, r)
		if err != nil {
			sendError(ctx, w, "lookupTicket", err)
			return
		}

		record, err := tickets.Lookup(ctx, key)
		if err != nil {
			sendError(ctx, w, "lookupTicket", err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Validation: model.NewValidation(record)},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

// RedeemTicket resolves the scanned reference and marks the ticket used by
// the signed-in staff member. A second scan gets 409 with the first redemption.
func RedeemTicket(resolver ReferenceResolver, tickets Tickets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key, err := resolveKey(resolver, r)
		if err != nil {
			sendError(ctx, w, "redeemTicket", err)
			return
		}

		record, err := tickets.Redeem(ctx, key, c.StaffID(ctx))
		if err != nil {
			sendError(ctx, w, "redeemTicket", err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Validation: model.NewValidation(record)},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
