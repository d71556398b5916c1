// Package state persists per-unit content hashes between runs so that
// regeneration can skip writing unchanged output units.
package state

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Cache is a SQLite-backed unit hash store. Use ":memory:" for an
// in-memory database, or a file path for persistent storage.
type Cache struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the cache database.
func Open(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	c := &Cache{db: db}
	if err := c.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return c, nil
}

func (c *Cache) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS units (
		slug TEXT PRIMARY KEY,
		hash TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	_, err := c.db.Exec(schema)
	return err
}

// Unchanged reports whether the stored hash for slug matches hash.
func (c *Cache) Unchanged(slug, hash string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var stored string
	err := c.db.QueryRow(`SELECT hash FROM units WHERE slug = ?`, slug).Scan(&stored)
	if err != nil {
		return false
	}
	return stored == hash
}

// Store records the hash for slug, replacing any previous value.
func (c *Cache) Store(slug, hash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(
		`INSERT INTO units (slug, hash, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET hash = excluded.hash, updated_at = excluded.updated_at`,
		slug, hash, time.Now().Unix(),
	)
	return err
}

// Reset drops all stored hashes, forcing a full rewrite on the next run.
func (c *Cache) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.db.Exec(`DELETE FROM units`)
	return err
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
