package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"nft-ticketing-backend/logger"
	"nft-ticketing-backend/redemption"
)

type ErrorResponse struct {
	StatusCode  int         `json:"-"`
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	Status      string      `json:"status"`
	Description string      `json:"description,omitempty"`
	Details     interface{} `json:"details,omitempty"`
}

func (r ErrorResponse) Error() string {
	return fmt.Sprintf("StatusCode: %d, Success: %t, Message: %s, Status: %s, Description: %s", r.StatusCode, r.Success, r.Message, r.Status, r.Description)
}

func (r ErrorResponse) Send(ctx context.Context, w http.ResponseWriter) {
	if r.StatusCode >= http.StatusInternalServerError {
		logger.Errorf(ctx, r.Error())
	} else {
		logger.Warnf(ctx, r.Error())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}

func BadRequest(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     message,
		Status:      "BAD REQUEST",
		Description: description,
	}
}

func ResourceNotFound(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusNotFound,
		Success:     false,
		Message:     message,
		Status:      "NOT FOUND",
		Description: description,
	}
}

func Unauthorized() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Success:    false,
		Message:    "No valid Auth Token",
		Status:     "UNAUTHORISED",
	}
}

func SomethingWrong() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Sorry, Something went wrong",
		Status:     "SOMETHING_WRONG",
	}
}

func InvalidData(description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     "Invalid data passed",
		Status:      "INVALID_DATA",
		Description: description,
	}
}

func InvalidReference(description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     "Ticket reference could not be read",
		Status:      "INVALID_REFERENCE",
		Description: description,
	}
}

func TicketNotFound() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusNotFound,
		Success:    false,
		Message:    "No ticket was minted for this reference",
		Status:     "TICKET_NOT_FOUND",
	}
}

func EventNotFound() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusNotFound,
		Success:    false,
		Message:    "Requested event does not exist",
		Status:     "EVENT_NOT_FOUND",
	}
}

// AlreadyRedeemed carries the stored record so gate staff can see when and
// by whom the ticket was first used.
func AlreadyRedeemed(record redemption.Record) ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusConflict,
		Success:    false,
		Message:    "Ticket has already been used",
		Status:     "ALREADY_REDEEMED",
		Details:    record,
	}
}

func DuplicateTicket() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusConflict,
		Success:    false,
		Message:    "Ticket is already registered",
		Status:     "DUPLICATE_TICKET",
	}
}

func InvalidCredentials() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Success:    false,
		Message:    "Wrong staff id or code",
		Status:     "INVALID_CREDENTIALS",
	}
}

func TooManyRequests() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusTooManyRequests,
		Success:    false,
		Message:    "Too many requests, slow down",
		Status:     "RATE_LIMITED",
	}
}
