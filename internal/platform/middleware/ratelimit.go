package middleware

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
)

// RateLimit admits at most rps requests per second with the given burst,
// shared across all clients. Rejected requests go to onLimited, which should
// write a 429 response. Paths in exempt bypass the limiter so probes keep
// working under load.
func RateLimit(rps float64, burst int, onLimited http.HandlerFunc, exempt ...string) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	skip := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		skip[p] = struct{}{}
	}
	retryAfter := "1"
	if rps > 0 && rps < 1 {
		retryAfter = strconv.Itoa(int(1/rps + 0.5))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				onLimited(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
