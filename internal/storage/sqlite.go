package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLite persists keys in a single table of a local database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Writes must land in call order.
	db.SetMaxOpenConns(1)

	store := &SQLite{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (store *SQLite) initSchema() error {
	_, err := store.db.Exec(`
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`)
	return err
}

// Get returns the value stored under key. Read errors count as absent.
func (store *SQLite) Get(key string) (string, bool) {
	var value string
	if err := store.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value); err != nil {
		return "", false
	}
	return value, true
}

// Set upserts value under key.
func (store *SQLite) Set(key, value string) error {
	_, err := store.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store key %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (store *SQLite) Close() error {
	if store.db != nil {
		return store.db.Close()
	}
	return nil
}
