// Package catalog keeps a local history of finished renders in a SQLite
// database, one row per render.
package catalog

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/san-kum/artlab/internal/render"
)

const schema = `
CREATE TABLE IF NOT EXISTS renders (
  id         INTEGER PRIMARY KEY,
  design     TEXT NOT NULL,
  path       TEXT NOT NULL,
  width      INTEGER NOT NULL,
  height     INTEGER NOT NULL,
  dpi        REAL NOT NULL,
  elapsed_ms INTEGER NOT NULL,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_renders_design ON renders (design);
`

// Catalog is an append-only render history.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path. Access is serialized
// over a single connection, which is all a local history needs.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error { return c.db.Close() }

// Record appends one render to the history.
func (c *Catalog) Record(ctx context.Context, res render.Result) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO renders (design, path, width, height, dpi, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.Design, res.Path, res.Width, res.Height, res.DPI, res.ElapsedMS,
		res.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Entry is one row of render history.
type Entry struct {
	ID        int64
	Design    string
	Path      string
	Width     int
	Height    int
	DPI       float64
	ElapsedMS int64
	CreatedAt time.Time
}

// Recent returns up to limit entries, newest first. A non-empty design
// restricts the listing to that slug; a limit below one falls back to 20.
func (c *Catalog) Recent(ctx context.Context, design string, limit int) ([]Entry, error) {
	if limit < 1 {
		limit = 20
	}

	query := `SELECT id, design, path, width, height, dpi, elapsed_ms, created_at
	          FROM renders`
	args := []any{}
	if design != "" {
		query += ` WHERE design = ?`
		args = append(args, design)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Design, &e.Path, &e.Width, &e.Height,
			&e.DPI, &e.ElapsedMS, &created); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = ts
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
