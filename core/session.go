package core

import (
	"sync"
	"time"
)

// Session is an ordered, append-only sequence of items identified by a session
// id. It is safe for concurrent access.
//
// Contract:
//   - Items are appended in order and never reordered or mutated in place
//   - The only removals are PopItem (last item) and Clear (everything)
//   - Items returns a defensive copy to avoid external mutation
type Session struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`

	items []Item
	mu    sync.RWMutex
}

// NewSession creates an empty session with the given id.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{ID: id, Created: now, Updated: now}
}

// AddItems appends items in the given order updating the Updated timestamp.
func (s *Session) AddItems(items ...Item) {
	if len(items) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
	s.Updated = time.Now()
}

// Items returns a copy of the trailing limit items in original order. A
// non-positive limit returns everything.
func (s *Session) Items(limit int) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := 0
	if limit > 0 && limit < len(s.items) {
		start = len(s.items) - limit
	}
	out := make([]Item, len(s.items)-start)
	copy(out, s.items[start:])
	return out
}

// Len reports the number of items currently held.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// PopItem removes and returns the last item, or nil when the session is empty.
func (s *Session) PopItem() Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	s.Updated = time.Now()
	return last
}

// Clear removes every item irreversibly.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.Updated = time.Now()
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Session{ID: s.ID, Created: s.Created, Updated: s.Updated, items: make([]Item, len(s.items))}
	copy(clone.items, s.items)
	return clone
}

// SessionStore persists the ordered item log of each session.
//
// Concurrency discipline: implementations must serialize AddItems/PopItem per
// session id (single writer at a time). Items may run concurrently with
// writers but must observe either the pre- or post-write state, never a
// partially appended batch. Runs against distinct session ids are fully
// independent.
type SessionStore interface {
	// Items returns the trailing limit items (all when limit <= 0) in
	// original append order. Read-only and side-effect free.
	Items(sessionID string, limit int) ([]Item, error)

	// AddItems appends items in the given order, atomically with respect to
	// concurrent appenders on the same session id.
	AddItems(sessionID string, items ...Item) error

	// PopItem removes and returns the last item. It returns (nil, nil) when
	// the session is empty or unknown.
	PopItem(sessionID string) (Item, error)

	// Clear empties the session irreversibly.
	Clear(sessionID string) error
}
