package handler

import (
	"net/http"

	"github.com/stationfinder/stationfinder/internal/api/middleware"
)

// getRequestID retrieves the request ID for log correlation.
func getRequestID(r *http.Request) string {
	return middleware.GetRequestID(r.Context())
}
