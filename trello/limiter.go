package trello

import (
	"sync"
	"time"
)

// Limiter enforces a sliding-window budget on outbound Trello API calls.
// One instance is shared by every guild the bot serves.
type Limiter struct {
	maxPermits int
	window     time.Duration

	mu      sync.Mutex
	nextID  uint64
	permits map[uint64]time.Time
}

// NewLimiter creates a limiter allowing maxPermits calls per trailing window.
func NewLimiter(maxPermits int, window time.Duration) *Limiter {
	return &Limiter{
		maxPermits: maxPermits,
		window:     window,
		permits:    make(map[uint64]time.Time),
	}
}

// Acquire reports how long the caller must wait before its request may go
// out. Zero means a permit was recorded and the caller proceeds immediately.
// A positive duration means the window is full: the caller sleeps for that
// long and is then considered granted without a second Acquire call, which
// is why no permit is recorded on the waiting path.
func (l *Limiter) Acquire() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)

	count := 0
	var earliest time.Time
	for id, issued := range l.permits {
		if issued.Before(cutoff) {
			delete(l.permits, id)
			continue
		}
		count++
		if earliest.IsZero() || issued.Before(earliest) {
			earliest = issued
		}
	}

	if count >= l.maxPermits {
		// Time until the earliest live permit falls out of the window.
		return earliest.Sub(cutoff) + time.Millisecond
	}

	l.nextID++
	l.permits[l.nextID] = now
	return 0
}
