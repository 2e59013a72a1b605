package fetch

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Cache stores HTTP response bodies in SQLite, keyed by URL.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// OpenCache opens (or creates) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS responses (
		url        TEXT PRIMARY KEY,
		body       BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create responses table: %w", err)
	}

	return &Cache{db: db, now: time.Now}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached body for url if it is younger than maxAge.
// A maxAge of zero accepts entries of any age.
func (c *Cache) Get(url string, maxAge time.Duration) ([]byte, bool, error) {
	var (
		body      []byte
		fetchedAt int64
	)
	err := c.db.QueryRow(`SELECT body, fetched_at FROM responses WHERE url = ?`, url).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache %s: %w", url, err)
	}

	if maxAge > 0 && c.now().Sub(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false, nil
	}
	return body, true, nil
}

// Put stores a body for url, replacing any previous entry.
func (c *Cache) Put(url string, body []byte) error {
	const q = `INSERT INTO responses (url, body, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`
	if _, err := c.db.Exec(q, url, body, c.now().Unix()); err != nil {
		return fmt.Errorf("write cache %s: %w", url, err)
	}
	return nil
}
