package receipt

import (
	"sync"
	"time"
)

// Registry maps client-held form tokens to their receipt sessions. Each
// open form in the bursar dashboard holds one token, so session state never
// leaks between forms or users. Idle sessions are pruned so abandoned forms
// do not accumulate.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry
	ttl      time.Duration
}

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*registryEntry),
		ttl:      ttl,
	}
}

// Acquire returns the session for token, creating it on first use, and
// marks it as recently active.
func (r *Registry) Acquire(token string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[token]
	if !ok {
		entry = &registryEntry{session: NewSession()}
		r.sessions[token] = entry
	}
	entry.lastSeen = time.Now()
	return entry.session
}

// Remove ends the session for token. Called when the payment is persisted
// or the form is explicitly reset.
func (r *Registry) Remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

// Sweep drops sessions idle longer than the registry TTL and returns how
// many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-r.ttl)
	removed := 0
	for token, entry := range r.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}

// StartSweeper prunes idle sessions in the background at the given
// interval.
func (r *Registry) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			r.Sweep()
		}
	}()
}
