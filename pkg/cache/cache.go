// Package cache is a SQLite-backed cache of parsed protocol XML,
// keyed by source path and modification time, so repeated `wlgen
// generate` runs over an unchanged wayland-protocols checkout skip
// re-parsing and re-templating.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one cached generation result for a single protocol XML
// file.
type Entry struct {
	Path        string
	ModTime     time.Time
	Source      []byte
	Descriptors []byte
	UpdatedAt   time.Time
}

// Manager owns the cache database connection.
type Manager struct {
	db *sql.DB
}

// NewManager opens (creating if necessary) the SQLite database at
// dbPath and ensures its schema exists.
func NewManager(dbPath string) (*Manager, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache database: %w", err)
	}
	return m, nil
}

func (m *Manager) init() error {
	const schema = `CREATE TABLE IF NOT EXISTS generated (
		path TEXT PRIMARY KEY,
		mod_time DATETIME NOT NULL,
		source BLOB NOT NULL,
		descriptors BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	_, err := m.db.Exec(schema)
	return err
}

func (m *Manager) Close() error { return m.db.Close() }

// Lookup returns the cached entry for path if one exists and its
// mod_time matches modTime exactly (a stale cache entry is a miss,
// not an error).
func (m *Manager) Lookup(path string, modTime time.Time) (*Entry, bool, error) {
	row := m.db.QueryRow(
		`SELECT mod_time, source, descriptors, updated_at FROM generated WHERE path = ?`, path)

	var cachedModTime, updatedAt time.Time
	var source, descriptors []byte
	switch err := row.Scan(&cachedModTime, &source, &descriptors, &updatedAt); err {
	case sql.ErrNoRows:
		return nil, false, nil
	case nil:
		if !cachedModTime.Equal(modTime) {
			return nil, false, nil
		}
		return &Entry{
			Path: path, ModTime: cachedModTime,
			Source: source, Descriptors: descriptors, UpdatedAt: updatedAt,
		}, true, nil
	default:
		return nil, false, fmt.Errorf("cache lookup for %s: %w", path, err)
	}
}

// Store upserts the generation result for path.
func (m *Manager) Store(path string, modTime time.Time, source, descriptors []byte) error {
	_, err := m.db.Exec(
		`INSERT INTO generated (path, mod_time, source, descriptors, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(path) DO UPDATE SET
		   mod_time = excluded.mod_time,
		   source = excluded.source,
		   descriptors = excluded.descriptors,
		   updated_at = CURRENT_TIMESTAMP`,
		path, modTime, source, descriptors)
	if err != nil {
		return fmt.Errorf("cache store for %s: %w", path, err)
	}
	return nil
}

// Invalidate removes a single path's cache entry.
func (m *Manager) Invalidate(path string) error {
	_, err := m.db.Exec(`DELETE FROM generated WHERE path = ?`, path)
	return err
}

// Clear empties the entire cache.
func (m *Manager) Clear() error {
	_, err := m.db.Exec(`DELETE FROM generated`)
	return err
}
