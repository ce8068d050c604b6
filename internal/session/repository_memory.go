package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// sessionTTL bounds how long an abandoned session may linger before the
// store drops it. A session is one widget page load, so hours is generous.
const sessionTTL = 2 * time.Hour

// InMemoryStore keeps sessions in process memory. There is deliberately no
// persistent variant: a session dies with the order, its TTL or the process.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]*Session),
		ttl:      sessionTTL,
	}
}

func (r *InMemoryStore) Save(s *Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return nil
}

func (r *InMemoryStore) Find(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if r.expired(s) {
		r.Delete(id)
		return nil, false
	}
	return s, true
}

func (r *InMemoryStore) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *InMemoryStore) expired(s *Session) bool {
	return r.ttl > 0 && time.Since(s.CreatedAt) > r.ttl
}

// Sweep drops every expired session and reports how many were removed.
// Find already evicts lazily; the sweep catches sessions nobody asks for
// again so an abandoned cart cannot pin memory forever.
func (r *InMemoryStore) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps the store at the given interval. Run it in a goroutine
// from main.
func (r *InMemoryStore) RunJanitor(interval time.Duration) {
	for range time.Tick(interval) {
		r.Sweep()
	}
}
