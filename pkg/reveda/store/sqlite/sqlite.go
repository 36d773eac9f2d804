package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/screenlab/reveda/pkg/reveda/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite corpus database with WAL mode enabled,
// creating the schema if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS reviews (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	body TEXT NOT NULL,
	label TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS term_counts (
	kind TEXT NOT NULL,
	class TEXT NOT NULL,
	term TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(kind, class, term)
);

CREATE INDEX IF NOT EXISTS idx_term_counts_rank
	ON term_counts(kind, class, count DESC, term ASC);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// AddReviews inserts a batch of reviews in one transaction
func (s *sqliteStore) AddReviews(ctx context.Context, reviews []store.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO reviews (body, label) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range reviews {
		if r.Text == "" || r.Label == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, r.Text, r.Label); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Reviews returns all stored reviews in insertion order
func (s *sqliteStore) Reviews(ctx context.Context) ([]store.Review, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, body, label FROM reviews ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []store.Review
	for rows.Next() {
		var r store.Review
		if err := rows.Scan(&r.ID, &r.Text, &r.Label); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// ClassCounts returns stored review counts per label
func (s *sqliteStore) ClassCounts(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label, COUNT(*) FROM reviews GROUP BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var label string
		var n int64
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		counts[label] = n
	}
	return counts, rows.Err()
}

// ReplaceTermCounts swaps one count table in a single transaction
func (s *sqliteStore) ReplaceTermCounts(ctx context.Context, kind, class string, counts map[string]int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM term_counts WHERE kind=? AND class=?`, kind, class); err != nil {
		return err
	}

	if len(counts) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO term_counts (kind, class, term, count) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for term, count := range counts {
			if term == "" || count == 0 {
				continue
			}
			if _, err := stmt.ExecContext(ctx, kind, class, term, count); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// TermCounts loads one full count table
func (s *sqliteStore) TermCounts(ctx context.Context, kind, class string) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT term, count FROM term_counts WHERE kind=? AND class=?`, kind, class)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var term string
		var count int64
		if err := rows.Scan(&term, &count); err != nil {
			return nil, err
		}
		counts[term] = count
	}
	return counts, rows.Err()
}

// TopTerms returns the k highest counts, ties broken by term ascending
func (s *sqliteStore) TopTerms(ctx context.Context, kind, class string, k int) ([]store.TermCount, error) {
	if k <= 0 {
		k = 50
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT term, count
FROM term_counts
WHERE kind=? AND class=?
ORDER BY count DESC, term ASC
LIMIT ?;
`, kind, class, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []store.TermCount
	for rows.Next() {
		var tc store.TermCount
		if err := rows.Scan(&tc.Term, &tc.Count); err != nil {
			return nil, err
		}
		terms = append(terms, tc)
	}
	return terms, rows.Err()
}

// TotalTerms sums all counts in one table
func (s *sqliteStore) TotalTerms(ctx context.Context, kind, class string) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(count), 0) FROM term_counts WHERE kind=? AND class=?`,
		kind, class).Scan(&total)
	return total, err
}

// VocabSize counts distinct terms in one table
func (s *sqliteStore) VocabSize(ctx context.Context, kind, class string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM term_counts WHERE kind=? AND class=?`,
		kind, class).Scan(&n)
	return n, err
}

// Clear wipes all stored data
func (s *sqliteStore) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reviews`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM term_counts`); err != nil {
		return err
	}
	return tx.Commit()
}
