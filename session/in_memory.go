package session

import (
	"sync"

	"github.com/hupe1980/agentrun/core"
)

// InMemoryStore is a volatile SessionStore implementation storing sessions in
// a process local map. It is safe for concurrent access and best suited for
// tests or ephemeral demo runs. Sessions are created lazily on first write.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Items returns the trailing limit items of the session in append order.
func (s *InMemoryStore) Items(sessionID string, limit int) ([]core.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return sess.Items(limit), nil
}

// AddItems appends items to an existing or newly created session. The batch
// is applied atomically: readers observe none or all of it.
func (s *InMemoryStore) AddItems(sessionID string, items ...core.Item) error {
	sess := s.getOrCreate(sessionID)
	sess.AddItems(items...)
	return nil
}

// PopItem removes and returns the last item, or (nil, nil) when empty.
func (s *InMemoryStore) PopItem(sessionID string) (core.Item, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return sess.PopItem(), nil
}

// Clear empties the session irreversibly.
func (s *InMemoryStore) Clear(sessionID string) error {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		sess.Clear()
	}
	return nil
}

func (s *InMemoryStore) getOrCreate(sessionID string) *core.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = core.NewSession(sessionID)
		s.sessions[sessionID] = sess
	}
	return sess
}
