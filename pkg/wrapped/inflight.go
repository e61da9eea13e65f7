package wrapped

import (
	"sync"

	"github.com/google/uuid"
)

// Inflight tracks the single lookup whose result may still be applied.
// Starting a new lookup supersedes the previous one, so a slow response
// that arrives late is recognised as stale and dropped.
type Inflight struct {
	mu      sync.Mutex
	current string
	loading bool
}

// Begin starts a lookup and returns its token.
func (f *Inflight) Begin() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = uuid.NewString()
	f.loading = true
	return f.current
}

// Finish reports whether token belongs to the latest lookup. Only then is
// loading cleared; stale tokens change nothing.
func (f *Inflight) Finish(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token == "" || token != f.current {
		return false
	}
	f.loading = false
	return true
}

// Loading reports whether the latest lookup is still running.
func (f *Inflight) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}
