// Package middleware provides HTTP middleware for the API layer.
package middleware

import (
	"net/http"

	"github.com/harlowgray/lexica-api/internal/api/shared"
)

// TraceID attaches a unique trace ID to every request context so that
// log lines and error responses for the same request can be correlated.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
