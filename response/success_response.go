package response

import (
	"encoding/json"
	"net/http"

	"nft-ticketing-backend/model"
)

type SuccessResponse struct {
	Data       *Data `json:"data"`
	StatusCode int   `json:"-"`
}

type Data struct {
	Sale       *model.Sale       `json:"sale,omitempty"`
	Event      *model.Event      `json:"event,omitempty"`
	Ticket     *model.Ticket     `json:"ticket,omitempty"`
	Validation *model.Validation `json:"validation,omitempty"`
	Session    *model.Session    `json:"session,omitempty"`
	Health     *model.Health     `json:"health,omitempty"`
}

func (r SuccessResponse) Send(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}
