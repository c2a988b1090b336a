// Package ratelimiter limits how often an operation may run within a fixed window.
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiter allows at most limit calls per interval. The window restarts
// on the first call after interval has elapsed. Safe for concurrent use.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time
	now       func() time.Time
}

// NewRateLimiter creates a RateLimiter. A limit <= 0 allows every call.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
	}
}

// Allow reports whether one more call fits in the current window and, if so,
// counts it.
func (rl *RateLimiter) Allow() bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}
	if rl.count >= rl.limit {
		return false
	}
	rl.count++
	return true
}

// RetryAfter returns how long until the current window ends.
func (rl *RateLimiter) RetryAfter() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	d := rl.interval - rl.now().Sub(rl.lastReset)
	if d < 0 {
		return 0
	}
	return d
}
