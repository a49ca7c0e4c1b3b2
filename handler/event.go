package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"nft-ticketing-backend/logger"
	"nft-ticketing-backend/model"
	"nft-ticketing-backend/response"

	"github.com/gorilla/mux"
)

func CreateEvent(events Events) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CreateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("createEvent: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}
		if err := model.Validate(req); err != nil {
			response.InvalidData(fmt.Sprintf("createEvent: invalid request: %v", err)).Send(ctx, w)
			return
		}

		e, err := events.Create(ctx, req.Event())
		if err != nil {
			sendError(ctx, w, "createEvent", err)
			return
		}

		logger.Infof(ctx, "createEvent: stored event %s with %d ticket types", e.ID, len(e.TicketTypes))
		response.SuccessResponse{
			Data:       &response.Data{Event: &model.Event{Event: e}},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func GetEvent(events Events) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		e, err := events.Get(ctx, mux.Vars(r)["eventID"])
		if err != nil {
			sendError(ctx, w, "getEvent", err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Event: &model.Event{Event: e}},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
