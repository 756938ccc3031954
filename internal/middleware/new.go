package middleware

import (
	"ai-planning-studio/config"
	"ai-planning-studio/pkg/log"
	"ai-planning-studio/pkg/metrics"
)

type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *rateLimiter
	metrics *metrics.Metrics

	maxBodyBytes int64 // 0 disables BodyLimit
}

// New builds the middleware set. The limiter is nil when rate limiting is
// disabled, m may be nil when metrics are not exported.
func New(l log.Logger, cfg *config.Config, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:       l,
		cors:    cfg.CORS,
		metrics: m,

		maxBodyBytes: MaxBodyBytes(cfg.Document.MaxFileBytes),
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimit.RequestsPerMin)
	}
	return mw
}
