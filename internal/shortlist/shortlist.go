package shortlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobfinder-engine/internal/domain"

	_ "modernc.org/sqlite"
)

// ErrMissingURL rejects postings without the dedup key.
var ErrMissingURL = errors.New("missing url")

// Store keeps the session's saved postings, deduplicated by url. It is
// an in-memory sqlite database pinned to one connection: sqlite wants a
// single writer anyway, and the memory database lives exactly as long
// as that connection, so the shortlist dies with the process.
type Store struct {
	db *sql.DB
}

func Open() (*Store, error) {
	db, err := sql.Open("sqlite", "file::memory:?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("shortlist schema: %w", err)
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS shortlist (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  company TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  remote INTEGER NOT NULL DEFAULT 0,
  source TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL,
  date_posted TEXT NOT NULL DEFAULT ''
);
`); err != nil {
		return err
	}

	_, err := db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_shortlist_url
ON shortlist(url);
`)
	return err
}

// Save inserts the posting unless an entry with the same url already
// exists. Idempotent; reports whether a row was actually added.
func (s *Store) Save(ctx context.Context, p domain.JobPosting) (added bool, err error) {
	if strings.TrimSpace(p.URL) == "" {
		return false, ErrMissingURL
	}

	res, err := s.db.ExecContext(ctx, `
INSERT OR IGNORE INTO shortlist(company, title, location, remote, source, url, date_posted)
VALUES(?,?,?,?,?,?,?);`,
		p.Company, p.Title, p.Location, p.Remote, p.Source, p.URL, p.DatePosted,
	)
	if err != nil {
		return false, fmt.Errorf("save posting: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// List returns saved postings in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.JobPosting, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT company, title, location, remote, source, url, date_posted
FROM shortlist
ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list shortlist: %w", err)
	}
	defer rows.Close()

	var out []domain.JobPosting
	for rows.Next() {
		var p domain.JobPosting
		if err := rows.Scan(&p.Company, &p.Title, &p.Location, &p.Remote, &p.Source, &p.URL, &p.DatePosted); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
