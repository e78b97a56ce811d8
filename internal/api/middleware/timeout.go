package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds each request with a deadline. Store calls inherit the
// deadline through the request context; when it fires the handler's error
// path maps the cancellation onto 504 Gateway Timeout.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
