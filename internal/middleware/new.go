package middleware

import (
	"planning-assistant/pkg/log"
)

// RateLimitConfig tunes the per-client chat rate limiter.
type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rlCfg RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rlCfg),
	}
}
