// Package storage provides the persistent key-value slot backing the
// record store. The whole record collection is serialized as one JSON
// document and written to a single row in a local SQLite database, the
// server-side analog of a browser's local storage slot.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Slot is a single named location in the database. Save overwrites the
// whole value; there is no incremental persistence.
type Slot struct {
	db  *sql.DB
	key string
}

// Open opens (creating if needed) the SQLite database at path and returns
// the slot for the given key. Path may be ":memory:" for tests.
func Open(path, key string) (*Slot, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open slot database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping slot database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}

	// One writer at a time is plenty for a single slot, and it keeps
	// SQLite's lock contention out of the picture.
	db.SetMaxOpenConns(1)

	return &Slot{db: db, key: key}, nil
}

// Load reads the slot value. ok is false when nothing has been written yet.
func (s *Slot) Load() ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %q: %w", s.key, err)
	}
	return value, true, nil
}

// Save overwrites the slot with the given value.
func (s *Slot) Save(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		s.key, data)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", s.key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Slot) Close() error {
	return s.db.Close()
}
