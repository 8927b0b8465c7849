package api

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
)

type rateLimiter interface {
	Allow() bool
}

// tokenBucket adapts rate.Limiter to rateLimiter.
type tokenBucket struct {
	limiter *rate.Limiter
	rps     float64
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
		rps:     ratePerSecond,
	}
}

func (b *tokenBucket) Allow() bool {
	if b == nil || b.limiter == nil {
		return true
	}
	return b.limiter.Allow()
}

// retryAfterSeconds is the whole-second wait before one token refills.
func (b *tokenBucket) retryAfterSeconds() int {
	if b == nil || b.rps >= 1 {
		return 1
	}
	secs := int(1/b.rps + 0.5)
	if secs < 1 {
		secs = 1
	}
	return secs
}

func rateLimitMiddleware(limiter rateLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}
		retryAfter := 1
		if bucket, ok := limiter.(*tokenBucket); ok {
			retryAfter = bucket.retryAfterSeconds()
		}
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded, please retry shortly")
	})
}
