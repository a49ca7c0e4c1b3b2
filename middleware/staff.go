package middleware

import (
	"net/http"
	"strings"

	c "nft-ticketing-backend/context"
	"nft-ticketing-backend/logger"
	"nft-ticketing-backend/response"
)

// SessionVerifier maps a staff session token to the staff id it was issued to.
type SessionVerifier interface {
	Verify(token string) (string, error)
}

// RequireStaff rejects requests without a valid bearer session and attaches
// the staff id to the request context.
func RequireStaff(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
			if token == "" {
				response.Unauthorized().Send(ctx, w)
				return
			}

			staffID, err := verifier.Verify(token)
			if err != nil {
				logger.Warnf(ctx, "requireStaff: %v", err)
				response.Unauthorized().Send(ctx, w)
				return
			}

			ctx = c.SetContextWithValue(ctx, c.ContextKeyStaffID, staffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
