package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// writeBacklog bounds how many mutating requests may queue behind the one in flight.
const writeBacklog = 256

// NewWriteSerializer returns a middleware that lets at most one mutating
// request (anything but GET, HEAD and OPTIONS) run at a time. Queued requests
// wait up to timeout and then get 429. Reads are never queued.
//
// When enabled is false the middleware is a pass-through.
func NewWriteSerializer(enabled bool, timeout time.Duration) func(http.Handler) http.Handler {
	if !enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	throttle := chimiddleware.ThrottleWithOpts(chimiddleware.ThrottleOpts{
		Limit:          1,
		BacklogLimit:   writeBacklog,
		BacklogTimeout: timeout,
	})
	return func(next http.Handler) http.Handler {
		serialized := throttle(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				serialized.ServeHTTP(w, r)
			}
		})
	}
}
