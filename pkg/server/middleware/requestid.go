package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/safetynet/alerts/pkg/identity"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches an identity.Identity to the request context. An
// incoming X-Request-ID is reused, otherwise a random UUID is generated.
// The id is echoed in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		id := identity.FromRequest(r, requestID)
		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}
