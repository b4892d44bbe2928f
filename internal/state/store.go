// Package state persists small ordered string lists (ranked and deleted movie IDs) in SQLite.
package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Keys of the lists kept by the watchlist.
const (
	RankedKey  = "rankedMovieIDs"
	DeletedKey = "deletedMovieIDs"
)

const listsSchema = `
CREATE TABLE IF NOT EXISTS lists (
	list_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store manages the SQLite database holding the lists.
type Store struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
}

// Open opens (and creates if needed) the store at dbPath.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to connect to state database: %w", err), closeErr)
	}

	if _, err := db.Exec(listsSchema); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to create lists table: %w", err), closeErr)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Strings returns the list stored under key, or an empty list if none was saved.
func (s *Store) Strings(key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data string
	err := s.db.QueryRow(`SELECT data FROM lists WHERE list_key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read list %s: %w", key, err)
	}

	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		slog.Warn("Discarding unreadable stored list", "key", key, "error", err)
		return []string{}, nil
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// SetStrings replaces the list stored under key.
func (s *Store) SetStrings(key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode list %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO lists (list_key, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`, key, string(data))
	if err != nil {
		return fmt.Errorf("failed to save list %s: %w", key, err)
	}

	slog.Debug("Saved list", "key", key, "count", len(values))
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
