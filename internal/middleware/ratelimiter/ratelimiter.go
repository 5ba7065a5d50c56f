package ratelimiter

import (
	"sync"
	"time"
)

// limiter is a token bucket for a single identity.
type limiter struct {
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// UserRateLimiter manages token buckets keyed by identity (user id, IP,
// or "global"). Idle buckets are dropped after expirationTime.
type UserRateLimiter struct {
	limiters       map[string]*limiter
	mu             sync.Mutex
	rate           float64 // tokens per second
	capacity       float64
	expirationTime time.Duration
}

func New(rate, capacity float64, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:       make(map[string]*limiter),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

// Allow consumes one token for identity, reporting whether the request may
// proceed.
func (u *UserRateLimiter) Allow(identity string) bool {
	now := time.Now()

	u.mu.Lock()
	defer u.mu.Unlock()

	u.evictIdle(now)

	l, ok := u.limiters[identity]
	if !ok {
		l = &limiter{tokens: u.capacity, lastRefill: now}
		u.limiters[identity] = l
	}

	elapsed := now.Sub(l.lastRefill).Seconds()
	l.tokens = min(u.capacity, l.tokens+elapsed*u.rate)
	l.lastRefill = now
	l.lastSeen = now

	if l.tokens < 1 {
		return false
	}
	l.tokens--
	return true
}

func (u *UserRateLimiter) evictIdle(now time.Time) {
	for id, l := range u.limiters {
		if now.Sub(l.lastSeen) > u.expirationTime {
			delete(u.limiters, id)
		}
	}
}

// Presets mirroring the limits the router applies.

func Rps10() *UserRateLimiter {
	return New(10, 10, time.Hour)
}

func Rps100() *UserRateLimiter {
	return New(100, 100, time.Hour)
}

func OnceInSecond() *UserRateLimiter {
	return New(1, 1, time.Hour)
}
