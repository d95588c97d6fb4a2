package ratelimit

import (
	"context"
	"sync"
	"time"

	"salon-backend/internal/pkg/clock"
)

// Limiter counts hits per key inside a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter is the single-instance fallback used when REDIS_URL is empty.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	clock  clock.Clock

	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	count     int
	resetTime time.Time
}

func NewMemoryLimiter(limit int, window time.Duration, clk clock.Clock) *MemoryLimiter {
	limit, window = normalize(limit, window)
	return &MemoryLimiter{
		limit:    limit,
		window:   window,
		clock:    clk,
		visitors: map[string]*visitor{},
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	v := l.visitors[key]
	if v == nil || !now.Before(v.resetTime) {
		l.visitors[key] = &visitor{count: 1, resetTime: now.Add(l.window)}
		l.sweep(now)
		return true, nil
	}
	if v.count >= l.limit {
		return false, nil
	}
	v.count++
	return true, nil
}

// sweep drops expired windows so idle clients do not accumulate.
func (l *MemoryLimiter) sweep(now time.Time) {
	if len(l.visitors) < 1024 {
		return
	}
	for k, v := range l.visitors {
		if !now.Before(v.resetTime) {
			delete(l.visitors, k)
		}
	}
}

func normalize(limit int, window time.Duration) (int, time.Duration) {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	return limit, window
}
