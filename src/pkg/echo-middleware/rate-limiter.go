package echomw

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Buckets are dropped a minute after creation.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit // requests per second
	burst   int        // requests allowed at once
	ttl     time.Duration
}

func NewRateLimiter(requestsPerSecond int, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*rate.Limiter),
		limit:   rate.Limit(requestsPerSecond),
		burst:   burst,
		ttl:     time.Minute,
	}
}

func (r *RateLimiter) limiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	limiter, exists := r.clients[ip]
	if !exists {
		limiter = rate.NewLimiter(r.limit, r.burst)
		r.clients[ip] = limiter

		time.AfterFunc(r.ttl, func() {
			r.mu.Lock()
			delete(r.clients, ip)
			r.mu.Unlock()
		})
	}
	return limiter
}

// Middleware rejects requests over the client's budget with 429.
func (r *RateLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !r.limiter(c.RealIP()).Allow() {
			return c.String(http.StatusTooManyRequests, "Too many requests")
		}
		return next(c)
	}
}
