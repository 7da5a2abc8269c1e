// Package session holds the process-wide session table. It is the only
// place a token is mapped to a signed-in user; views and middleware read
// it through the narrow Reader interface and never mutate it directly.
package session

import "sync"

// Session is the profile snapshot taken at login.
type Session struct {
	UserID string
	Email  string
	Role   string
}

// Reader is the read-only view handed to middleware and handlers.
type Reader interface {
	Get(token string) (Session, bool)
}

type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Session)}
}

// Start registers a session at login.
func (r *Registry) Start(token string, s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = s
}

// End tears the session down at logout. A token that was never started is
// a no-op.
func (r *Registry) End(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

func (r *Registry) Get(token string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	return s, ok
}
