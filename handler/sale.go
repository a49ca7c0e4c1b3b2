package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"nft-ticketing-backend/event"
	"nft-ticketing-backend/model"
	"nft-ticketing-backend/response"
	"nft-ticketing-backend/sale"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/mux"
)

// CompileSale builds the sale creation parameters from a request body.
func CompileSale(compiler SaleCompiler, observer CompileObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CompileSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("compileSale: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}
		if err := model.Validate(req); err != nil {
			response.InvalidData(fmt.Sprintf("compileSale: invalid request: %v", err)).Send(ctx, w)
			return
		}

		sendSale(ctx, w, compiler, observer, req.Input())
	}
}

// EventSale compiles the sale parameters of a stored event.
func EventSale(events Events, compiler SaleCompiler, observer CompileObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		e, err := events.Get(ctx, mux.Vars(r)["eventID"])
		if err != nil {
			sendError(ctx, w, "eventSale", err)
			return
		}

		sendSale(ctx, w, compiler, observer, event.SaleInput(e))
	}
}

func sendSale(ctx context.Context, w http.ResponseWriter, compiler SaleCompiler, observer CompileObserver, in sale.Input) {
	params, err := compiler.Compile(in)
	observer.ObserveCompile(err)
	if err != nil {
		sendError(ctx, w, "compileSale", err)
		return
	}

	calldata, err := sale.EncodeCreateSale(params)
	if err != nil {
		sendError(ctx, w, "compileSale", err)
		return
	}

	response.SuccessResponse{
		Data: &response.Data{Sale: &model.Sale{
			Params:   params,
			Method:   sale.CreateSaleMethod,
			Calldata: hexutil.Encode(calldata),
		}},
		StatusCode: http.StatusOK,
	}.Send(w)
}
