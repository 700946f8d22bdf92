package middleware

import (
	"civic-ai-orchestrator/config"
	"civic-ai-orchestrator/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *rateLimiter
}

// New builds the middleware set. The rate limiter is nil when disabled.
func New(l log.Logger, cors config.CORSConfig, rl config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:    l,
		cors: cors,
	}
	if rl.Enabled {
		mw.limiter = newRateLimiter(rl)
	}
	return mw
}
