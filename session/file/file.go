// Package file implements a file-backed core.SessionStore. Each session id
// maps to one JSONL file of item envelopes under a root directory, giving a
// human-inspectable, crash-consistent log: appends write whole lines, so a
// partial write never yields a decodable half item.
package file

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hupe1980/agentrun/core"
)

// Store persists session item logs as JSONL files. Writers on the same
// session id are serialized through a per-id mutex; distinct session ids do
// not contend.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates the root directory if needed and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Items returns the trailing limit items of the session in append order.
func (s *Store) Items(sessionID string, limit int) ([]core.Item, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	items, err := s.readAll(sessionID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(items) {
		items = items[len(items)-limit:]
	}
	return items, nil
}

// AddItems appends items in order as one durable batch.
func (s *Store) AddItems(sessionID string, items ...core.Item) error {
	if len(items) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, it := range items {
		line, err := core.MarshalItem(it)
		if err != nil {
			return err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	f, err := os.OpenFile(s.path(sessionID), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("append session items: %w", err)
	}
	return f.Sync()
}

// PopItem removes and returns the last item, or (nil, nil) when empty. The
// file is rewritten without its last line.
func (s *Store) PopItem(sessionID string) (core.Item, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	items, err := s.readAll(sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	last := items[len(items)-1]
	if err := s.rewrite(sessionID, items[:len(items)-1]); err != nil {
		return nil, err
	}
	return last, nil
}

// Clear removes the session file irreversibly.
func (s *Store) Clear(sessionID string) error {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	err := os.Remove(s.path(sessionID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) path(sessionID string) string {
	// Session ids are opaque; normalize anything path-hostile.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, sessionID)
	return filepath.Join(s.dir, safe+".jsonl")
}

func (s *Store) lockFor(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

func (s *Store) readAll(sessionID string) ([]core.Item, error) {
	f, err := os.Open(s.path(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()

	var items []core.Item
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		it, err := core.UnmarshalItem(line)
		if err != nil {
			return nil, fmt.Errorf("decode session line: %w", err)
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	return items, nil
}

func (s *Store) rewrite(sessionID string, items []core.Item) error {
	tmp := s.path(sessionID) + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open temp session file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, it := range items {
		line, err := core.MarshalItem(it)
		if err != nil {
			f.Close()
			return err
		}
		w.Write(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush temp session file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp session file: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(sessionID))
}
