// Package middleware holds HTTP middleware applied on top of chi's stock set.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/crimson-sun/mheda/internal/api/shared"
)

// Trace adds a trace ID to the request context so handlers and error
// responses can be correlated in the logs. Apply early in the chain.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.Debug("request started",
			"trace_id", shared.GetTraceID(ctx),
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
