package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware turns new requests away with 503 once the server has started
// draining. Requests already in flight keep running until the drain deadline
// on baseCtx expires.
func Middleware(draining *atomic.Bool, baseCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if baseCtx.Err() != nil && draining.Load() {
				http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
