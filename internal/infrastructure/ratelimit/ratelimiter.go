package ratelimit

import "time"

// Limit describes a sliding-window rate limit.
type Limit struct {
	Requests int
	Window   time.Duration
}

// RateLimiter throttles requests per key.
type RateLimiter interface {
	Allow(key string, limit Limit) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
}
