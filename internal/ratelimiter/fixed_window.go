package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

// FixedWindowRateLimiter counts requests per key inside a fixed window and
// rejects once the window's budget is spent.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	frame   time.Duration
}

type window struct {
	start time.Time
	count int
}

func NewFixedWindowLimiter(limit int, frame time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		frame:   frame,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether the key may proceed. When the budget is spent it
// returns how long the caller should wait before retrying.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.frame {
		rl.clients[key] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, w.start.Add(rl.frame).Sub(now)
}

// cleanup drops keys whose window is long gone so idle clients do not pin
// map entries forever.
func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.frame)
	for range ticker.C {
		cutoff := time.Now().Add(-2 * rl.frame)
		rl.mu.Lock()
		for key, w := range rl.clients {
			if w.start.Before(cutoff) {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}
