package conversion

import (
	"sync"
	"time"
)

// DefaultSessionTTL is how long an untouched session survives before the
// sweeper purges it.
const DefaultSessionTTL = 30 * time.Minute

// Registry holds the live conversion sessions, keyed by id.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	rates    RateSource
	ttl      time.Duration
}

func NewRegistry(rates RateSource, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &Registry{
		sessions: make(map[string]*Session),
		rates:    rates,
		ttl:      ttl,
	}
}

func (r *Registry) Create(uid string) *Session {
	session := NewSession(uid, r.rates)

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return session
}

// Find returns the session only when it belongs to the given member.
func (r *Registry) Find(id string, uid string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok || session.MemberUID != uid {
		return nil, false
	}

	return session, true
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	session, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		session.Dispose()
	}
}

// SweepIdle disposes and removes sessions untouched for longer than the TTL.
// Returns how many were purged.
func (r *Registry) SweepIdle() int {
	deadline := time.Now().Add(-r.ttl)

	r.mu.Lock()
	expired := make([]*Session, 0)
	for id, session := range r.sessions {
		if session.TouchedAt().Before(deadline) {
			expired = append(expired, session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, session := range expired {
		session.Dispose()
	}

	return len(expired)
}

func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
