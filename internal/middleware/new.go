package middleware

import (
	"task-capture/pkg/log"
)

// Config tunes the shared HTTP middlewares.
type Config struct {
	// RateLimitPerMin caps requests per client IP. Zero disables the limit.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
