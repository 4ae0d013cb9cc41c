package gen

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Cache is a content-addressed store of packed stamps in a SQLite
// database, keyed by the digest of the source image and the rendering
// options that shaped it. Identical inputs skip decode and quantisation
// entirely on later runs.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates a cache database at file. It is safe for use
// from concurrent scan workers.
func OpenCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	// SQLite permits one writer, so funnel the scan workers through a
	// single connection rather than surface busy errors.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS stamp (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, options TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, data BLOB NOT NULL, UNIQUE(sha1, options))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the asset cached for a digest and options fingerprint,
// with only its dimensions and data populated, or nil if there is none.
func (c *Cache) Lookup(sha, options string) (*Asset, error) {
	a := new(Asset)
	switch err := c.db.QueryRow("SELECT width, height, data FROM stamp WHERE sha1 = ? AND options = ?", sha, options).Scan(&a.Width, &a.Height, &a.Data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return a, nil
	default:
		return nil, err
	}
}

// Store records an asset against a digest and options fingerprint,
// replacing any previous entry.
func (c *Cache) Store(sha, options string, a *Asset) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO stamp (sha1, options, width, height, data) VALUES (?, ?, ?, ?, ?)", sha, options, a.Width, a.Height, a.Data); err != nil {
		return err
	}
	return nil
}
