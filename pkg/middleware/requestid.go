package middleware

import (
	"net/http"
	"strings"

	"movie-browser/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses a caller supplied id or generates one, and echoes it back.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" || len(requestID) > 64 {
			requestID = utils.NewRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(utils.SetRequestID(r.Context(), requestID)))
	})
}
