package session

import (
	"sync"
	"time"
)

// Entry is what a session id resolves to.
type Entry struct {
	UserID    string
	CreatedAt time.Time
}

// Registry is the in-memory session map shared by all request
// handling goroutines. Lifetime is the process lifetime; it is
// constructed once and injected into whichever strategy needs it.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

func (r *Registry) Put(sessionID string, e Entry) {
	r.mu.Lock()
	r.entries[sessionID] = e
	r.mu.Unlock()
}

func (r *Registry) Get(sessionID string) (Entry, bool) {
	r.mu.RLock()
	e, ok := r.entries[sessionID]
	r.mu.RUnlock()
	return e, ok
}

// Delete removes a session id. Once deleted the id never resolves
// again. Reports whether an entry was present.
func (r *Registry) Delete(sessionID string) bool {
	r.mu.Lock()
	_, ok := r.entries[sessionID]
	delete(r.entries, sessionID)
	r.mu.Unlock()
	return ok
}
