// Package ratelimiter throttles incoming HTTP requests with a token
// bucket.
//
// Tokens refill at a constant rate and each request consumes one; burst
// capacity absorbs short spikes above the sustained rate. A rate of zero
// disables limiting entirely.
package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter wraps golang.org/x/time/rate with the service's zero-means-
// unlimited convention. Safe for concurrent use.
type RateLimiter struct {
	limiter *rate.Limiter
}

// New creates a limiter allowing requestsPerSecond sustained with the given
// burst capacity. A zero rate yields an effectively unlimited limiter.
func New(requestsPerSecond, burst uint) *RateLimiter {
	if requestsPerSecond == 0 {
		// rate.Inf has edge cases around SetLimit; a huge finite rate
		// behaves the same for any real workload.
		requestsPerSecond = 1_000_000_000
		burst = requestsPerSecond
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), int(burst)),
	}
}

// Allow reports whether one more request fits under the limit, consuming a
// token when it does. This is the fast reject-don't-queue path.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// Wait blocks until a token is available or ctx is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Tokens returns the current number of available tokens. Monitoring only;
// the value is stale the moment it returns.
func (r *RateLimiter) Tokens() float64 {
	return r.limiter.Tokens()
}
