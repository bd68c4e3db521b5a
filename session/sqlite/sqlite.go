// Package sqlite implements a database-backed core.SessionStore on SQLite.
// Items are stored one row per item with a monotonically increasing sequence
// per session id, so append order is the read order by construction.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/hupe1980/agentrun/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_items (
	session_id TEXT    NOT NULL,
	seq        INTEGER NOT NULL,
	item_type  TEXT    NOT NULL,
	payload    BLOB    NOT NULL,
	created_at TIMESTAMP NOT NULL,
	PRIMARY KEY (session_id, seq)
);
`

// Store persists session item logs in a SQLite database. Batch appends run in
// a single transaction; SQLite's writer lock provides the per-database
// single-writer guarantee, which subsumes per-session-id serialization.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at path and ensures the schema.
// Use ":memory:" for an ephemeral store.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite session store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure session schema: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreFromDB wraps an existing database handle, ensuring the schema.
func NewStoreFromDB(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure session schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Items returns the trailing limit items of the session in append order.
func (s *Store) Items(sessionID string, limit int) ([]core.Item, error) {
	query := `SELECT item_type, payload FROM session_items WHERE session_id = ? ORDER BY seq`
	args := []any{sessionID}
	if limit > 0 {
		// Trailing window: select the last N by seq, then restore order.
		query = `SELECT item_type, payload FROM (
			SELECT seq, item_type, payload FROM session_items
			WHERE session_id = ? ORDER BY seq DESC LIMIT ?
		) ORDER BY seq`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session items: %w", err)
	}
	defer rows.Close()

	var items []core.Item
	for rows.Next() {
		var itemType string
		var payload []byte
		if err := rows.Scan(&itemType, &payload); err != nil {
			return nil, fmt.Errorf("scan session item: %w", err)
		}
		it, err := core.UnmarshalItem(payload)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// AddItems appends items in order within one transaction.
func (s *Store) AddItems(sessionID string, items ...core.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	var next int64
	row := tx.QueryRow(`SELECT COALESCE(MAX(seq), 0) + 1 FROM session_items WHERE session_id = ?`, sessionID)
	if err := row.Scan(&next); err != nil {
		return fmt.Errorf("next seq: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO session_items (session_id, seq, item_type, payload, created_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i, it := range items {
		tag, err := core.ItemTypeTag(it)
		if err != nil {
			return err
		}
		payload, err := core.MarshalItem(it)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(sessionID, next+int64(i), tag, payload, now); err != nil {
			return fmt.Errorf("insert session item: %w", err)
		}
	}

	return tx.Commit()
}

// PopItem removes and returns the last item, or (nil, nil) when empty.
func (s *Store) PopItem(sessionID string) (core.Item, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin pop: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	var payload []byte
	row := tx.QueryRow(`SELECT seq, payload FROM session_items WHERE session_id = ? ORDER BY seq DESC LIMIT 1`, sessionID)
	if err := row.Scan(&seq, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select last item: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM session_items WHERE session_id = ? AND seq = ?`, sessionID, seq); err != nil {
		return nil, fmt.Errorf("delete last item: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return core.UnmarshalItem(payload)
}

// Clear empties the session irreversibly.
func (s *Store) Clear(sessionID string) error {
	if _, err := s.db.Exec(`DELETE FROM session_items WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
