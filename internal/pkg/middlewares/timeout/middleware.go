package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware caps how long a single request may run by deadline-bounding its
// context. Handlers and the repositories below them observe the cancellation
// through ctx.
func Middleware(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
