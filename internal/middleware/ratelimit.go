package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const visitorTTL = 10 * time.Minute

// ipRateLimiter keeps one token bucket per client IP. Idle visitors expire
// from the cache after visitorTTL.
type ipRateLimiter struct {
	visitors *cache.Cache
	rps      rate.Limit
	burst    int
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		visitors: cache.New(visitorTTL, visitorTTL),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, found := rl.visitors.Get(ip); found {
		limiter := v.(*rate.Limiter)
		// Refresh the expiry so active clients keep their bucket.
		rl.visitors.SetDefault(ip, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(rl.rps, rl.burst)
	if err := rl.visitors.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		// Another request registered this IP first.
		if v, found := rl.visitors.Get(ip); found {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// RateLimit returns middleware that limits requests per IP address.
// rps is the allowed requests per second, burst is the maximum burst size.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newIPRateLimiter(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.getLimiter(ip).Allow() {
				w.Header().Set("Retry-After", "1")
				writeJSONError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
