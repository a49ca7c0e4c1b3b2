package handler

import (
	"net/http"
	"time"

	"nft-ticketing-backend/model"
	"nft-ticketing-backend/response"
)

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	response.SuccessResponse{
		Data:       &response.Data{Health: &model.Health{Status: "ok", Time: time.Now().UTC()}},
		StatusCode: http.StatusOK,
	}.Send(w)
}
