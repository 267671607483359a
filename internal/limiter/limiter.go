package limiter

import (
	"sync"
	"time"
)

const (
	// Window is the sliding rate-limit window.
	Window = 60 * time.Second
	// MaxRequests is the request budget per client key per window.
	MaxRequests = 10
)

// Limiter is an in-process sliding-window rate limiter keyed by client.
// State is local to this serving instance: behind a balancer with N instances
// the effective limit is MaxRequests * N, which is accepted for this service.
// Entries for idle clients are never removed.
type Limiter struct {
	mu      sync.Mutex
	clients map[string][]time.Time
	window  time.Duration
	max     int
	now     func() time.Time
}

func New() *Limiter {
	return &Limiter{
		clients: make(map[string][]time.Time),
		window:  Window,
		max:     MaxRequests,
		now:     time.Now,
	}
}

// Check records a request for key if it is within the limit. When the limit
// is exceeded it reports how many seconds to wait before a retry can succeed,
// never less than one. The prune-then-append sequence is atomic per call.
func (l *Limiter) Check(key string) (allowed bool, retryAfter int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.clients[key][:0]
	for _, ts := range l.clients[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	l.clients[key] = kept

	if len(kept) >= l.max {
		// Timestamps are appended in order, so kept[0] is the oldest.
		retry := int(kept[0].Add(l.window).Sub(now).Seconds()) + 1
		if retry < 1 {
			retry = 1
		}
		return false, retry
	}

	l.clients[key] = append(kept, now)
	return true, 0
}
