package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_records (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);`

// SQLite is a KV backend in a single SQLite table.
type SQLite struct {
	db *sql.DB
}

var _ KV = (*SQLite)(nil)

// NewSQLite opens the database file at path and creates the table if needed.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: sqlite schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get implements KV.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_records WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: sqlite get %s: %w", key, err)
	}
	return v, nil
}

// Put implements KV.
func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`
	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("store: sqlite put %s: %w", key, err)
	}
	return nil
}

// Close implements KV.
func (s *SQLite) Close() error {
	return s.db.Close()
}
