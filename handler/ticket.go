package handler

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"nft-ticketing-backend/model"
	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
)

// RegisterTicket records a freshly minted token as unused and returns the
// reference to print on it.
func RegisterTicket(tickets Tickets, issuer ReferenceIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.RegisterTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("registerTicket: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}
		if err := model.Validate(req); err != nil {
			response.InvalidData(fmt.Sprintf("registerTicket: invalid request: %v", err)).Send(ctx, w)
			return
		}

		record, err := tickets.Create(ctx, req.Key(), req.EventID, req.TierID)
		if err != nil {
			sendError(ctx, w, "registerTicket", err)
			return
		}

		ref, err := issuer.Reference(record.Key)
		if err != nil {
			sendError(ctx, w, "registerTicket", err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Ticket: &model.Ticket{Record: record, Reference: ref}},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

// TicketQR renders the validation reference of a registered ticket as PNG.
func TicketQR(tickets Tickets, issuer ReferenceIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)

		contract, tokenID := vars["contractAddress"], vars["tokenID"]
		if !common.IsHexAddress(contract) {
			response.InvalidData(fmt.Sprintf("ticketQR: invalid contract address: %s", contract)).Send(ctx, w)
			return
		}
		if id, ok := new(big.Int).SetString(tokenID, 10); !ok || id.Sign() < 0 {
			response.InvalidData(fmt.Sprintf("ticketQR: invalid token id: %s", tokenID)).Send(ctx, w)
			return
		}

		key := redemption.Key{ContractAddress: model.ChecksumAddress(contract), TokenID: tokenID}
		if _, err := tickets.Lookup(ctx, key); err != nil {
			sendError(ctx, w, "ticketQR", err)
			return
		}

		ticket, err := issuer.Issue(key)
		if err != nil {
			sendError(ctx, w, "ticketQR", err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(ticket.QR)))
		w.WriteHeader(http.StatusOK)
		w.Write(ticket.QR)
	}
}
