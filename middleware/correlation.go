package middleware

import (
	"net/http"

	c "nft-ticketing-backend/context"
	"nft-ticketing-backend/logger"
)

const correlationHeader = "Correlation-Id"

// SetCorrelationIDHeader carries the caller's Correlation-Id through the
// request context and echoes it back, minting one when the header is absent.
func SetCorrelationIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		supplied := r.Header.Get(correlationHeader)
		ctx, correlationID := c.WithCorrelationID(r.Context(), supplied)
		if supplied == "" {
			logger.Debugf(ctx, "no correlation id supplied, generated %s", correlationID)
			r.Header.Set(correlationHeader, correlationID)
		}
		w.Header().Set(correlationHeader, correlationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
