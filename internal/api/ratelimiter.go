package api

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
)

const (
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

type rateLimiter interface {
	Allow() bool
}

// WithRateLimiter overrides the request rate limiter (primarily for tests).
func WithRateLimiter(limiter rateLimiter) RouterOption {
	return func(cfg *routerConfig) {
		cfg.rateLimiter = limiter
	}
}

// WithRateLimit installs a token bucket limiter allowing rps requests per
// second with the given burst. A zero rps or burst disables limiting.
func WithRateLimit(rps float64, burst int) RouterOption {
	return func(cfg *routerConfig) {
		if rps <= 0 || burst <= 0 {
			cfg.rateLimiter = nil
			return
		}
		cfg.rateLimiter = newTokenBucketLimiter(rps, burst)
	}
}

type tokenBucket struct {
	limiter *rate.Limiter
}

func newTokenBucketLimiter(ratePerSecond float64, burst int) *tokenBucket {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &tokenBucket{
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
	}
}

func (b *tokenBucket) Allow() bool {
	if b == nil || b.limiter == nil {
		return true
	}
	return b.limiter.Allow()
}

// retryAfterSeconds is the time until one token is available, rounded up.
func (b *tokenBucket) retryAfterSeconds() int {
	if b == nil || b.limiter == nil || b.limiter.Limit() <= 0 {
		return 1
	}
	return int(math.Max(1, math.Ceil(1/float64(b.limiter.Limit()))))
}

func rateLimitMiddleware(limiter rateLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}

	retryAfter := 1
	if bucket, ok := limiter.(*tokenBucket); ok {
		retryAfter = bucket.retryAfterSeconds()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded, please retry shortly")
	})
}
