package session

import (
	"sync"
	"time"

	"github.com/fina-ai/fina/core"
)

// MaxHistory is the per-session message cap. Once a history exceeds it the
// oldest entries are dropped.
const MaxHistory = 20

// InMemoryStore is a volatile core.SessionStore implementation keeping
// conversation histories in a process local map. It is safe for concurrent
// access. Each returned history is copied to prevent external mutation of
// internal state.
type InMemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]core.Message
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string][]core.Message)}
}

// Get returns a copy of the history for key, or an empty slice when the key
// has never been seen. Missing keys are not an error.
func (s *InMemoryStore) Get(key string) []core.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.sessions[key]
	out := make([]core.Message, len(history))
	copy(out, history)
	return out
}

// Append adds msg to the session for key, creating the session lazily and
// truncating to the most recent MaxHistory entries.
func (s *InMemoryStore) Append(key string, msg core.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := append(s.sessions[key], msg)
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}
	s.sessions[key] = history
}

// Sweep removes every session whose most recent message is older than
// now−retention. Sessions with an empty history are removed unconditionally.
func (s *InMemoryStore) Sweep(retention time.Duration, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-retention)
	for key, history := range s.sessions {
		if len(history) == 0 || history[len(history)-1].Timestamp.Before(cutoff) {
			delete(s.sessions, key)
		}
	}
}

// Size returns the number of live sessions.
func (s *InMemoryStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
