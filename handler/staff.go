package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"nft-ticketing-backend/model"
	"nft-ticketing-backend/response"
)

func StaffSession(auth StaffLogin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.StaffSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("staffSession: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}
		if err := model.Validate(req); err != nil {
			response.InvalidData(fmt.Sprintf("staffSession: invalid request: %v", err)).Send(ctx, w)
			return
		}

		session, err := auth.Login(ctx, req.StaffID, req.Code)
		if err != nil {
			sendError(ctx, w, "staffSession", err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Session: &model.Session{Session: session}},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}
