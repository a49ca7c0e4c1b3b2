package middleware

import (
	"fmt"
	"net/http"
	"time"

	"nft-ticketing-backend/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// AccessLog logs each request on arrival, then its final status and latency.
// Scanner traffic is identified by remote address and, once signed in, staff id.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now().UTC()
		logger.WithFields(r.Context(), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"remote": r.RemoteAddr,
		}, "request")

		rec := &statusRecorder{ResponseWriter: w}
		defer func() {
			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.LogExecutionTime(r.Context(), start, fmt.Sprintf("%s %s -> %d", r.Method, r.URL.Path, status))
		}()
		next.ServeHTTP(rec, r)
	})
}
