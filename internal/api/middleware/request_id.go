// Package middleware provides HTTP middleware for the station API.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request correlation ID, on both
// requests and responses.
const RequestIDHeader = "X-Request-Id"

// requestIDKey is the context key for the request ID.
type requestIDKey struct{}

// NewRequestID returns a fresh request identifier: "req_" plus the first 22
// characters of a UUID, the same prefixed-ID shape station IDs use.
func NewRequestID() string {
	return "req_" + uuid.New().String()[:22]
}

// RequestID ensures every request carries a correlation ID: a client-supplied
// X-Request-Id is trusted as-is, otherwise one is generated. The ID is echoed
// on the response and stored in the request context for handlers and error
// responses to pick up.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = NewRequestID()
		}

		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request ID from the context, or "" when the
// request never passed through RequestID.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
