package activity

import (
	"sync"
	"time"
)

// DefaultSize is the capacity used when NewRing is given a non-positive size.
const DefaultSize = 256

// Ring is a fixed-size circular buffer of Events, oldest overwritten first.
// Safe for concurrent use.
type Ring struct {
	mu    sync.Mutex
	buf   []Event
	next  int // write position
	count int
}

// NewRing creates a ring holding at most size events.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = DefaultSize
	}
	return &Ring{buf: make([]Event, size)}
}

// Push records e, stamping Time if it is zero.
func (r *Ring) Push(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	r.mu.Lock()
	r.buf[r.next] = e
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
	r.mu.Unlock()
}

// Last returns up to n of the most recent events, oldest first.
func (r *Ring) Last(n int) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > r.count {
		n = r.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]Event, n)
	size := len(r.buf)
	for i := 0; i < n; i++ {
		out[i] = r.buf[(r.next-n+i+size)%size]
	}
	return out
}

// Len returns the number of buffered events.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int {
	return len(r.buf)
}

// Stats counts buffered events by kind.
func (r *Ring) Stats() map[Kind]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[Kind]int)
	for i := 0; i < r.count; i++ {
		counts[r.buf[i].Kind]++
	}
	return counts
}
