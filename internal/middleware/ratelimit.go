package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"task-capture/pkg/response"
)

const (
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client. Idle buckets expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// RateLimit rejects clients that exceed the configured request rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
