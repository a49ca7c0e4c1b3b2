package response

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nft-ticketing-backend/logger"
	"nft-ticketing-backend/model"
	"nft-ticketing-backend/redemption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.SetOutput(io.Discard)
}

func TestErrorResponseSend(t *testing.T) {
	usedAt := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	rec := httptest.NewRecorder()
	AlreadyRedeemed(redemption.Record{
		Key:         redemption.Key{ContractAddress: "0xABC", TokenID: "42"},
		IsUsed:      true,
		UsedAt:      &usedAt,
		ValidatedBy: "gate-1",
	}).Send(context.Background(), rec)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Success bool              `json:"success"`
		Status  string            `json:"status"`
		Details redemption.Record `json:"details"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "ALREADY_REDEEMED", body.Status)
	assert.Equal(t, "gate-1", body.Details.ValidatedBy)
	require.NotNil(t, body.Details.UsedAt)
	assert.True(t, usedAt.Equal(*body.Details.UsedAt))
}

func TestErrorResponseOmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()
	SomethingWrong().Send(context.Background(), rec)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotContains(t, body, "details")
	assert.NotContains(t, body, "description")
	assert.NotContains(t, body, "StatusCode")
}

func TestSuccessResponseSend(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessResponse{
		Data:       &Data{Ticket: &model.Ticket{Reference: "https://x/v?tokenId=1"}},
		StatusCode: http.StatusCreated,
	}.Send(rec)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"ticket":{"reference":"https://x/v?tokenId=1","record":{"contract_address":"","token_id":"","event_id":"","tier_id":"","is_used":false,"created_at":"0001-01-01T00:00:00Z"}}}}`, rec.Body.String())
}
