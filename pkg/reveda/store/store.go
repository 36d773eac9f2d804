package store

import "context"

// Term count kinds persisted per class.
const (
	KindToken   = "token"
	KindBigram  = "bigram"
	KindDocFreq = "docfreq"
)

// Store persists a loaded review corpus and its per-class count tables so
// later queries can re-rank or re-score without re-parsing the CSV.
type Store interface {
	Close() error

	// Reviews
	AddReviews(ctx context.Context, reviews []Review) error
	Reviews(ctx context.Context) ([]Review, error)
	ClassCounts(ctx context.Context) (map[string]int64, error)

	// Count tables, keyed by kind (token/bigram/docfreq) and class
	ReplaceTermCounts(ctx context.Context, kind, class string, counts map[string]int64) error
	TermCounts(ctx context.Context, kind, class string) (map[string]int64, error)
	TopTerms(ctx context.Context, kind, class string, k int) ([]TermCount, error)
	TotalTerms(ctx context.Context, kind, class string) (int64, error)
	VocabSize(ctx context.Context, kind, class string) (int64, error)

	// Clear wipes all reviews and count tables
	Clear(ctx context.Context) error
}

// Review is one stored review row
type Review struct {
	ID    int64
	Text  string
	Label string
}

// TermCount is one count-table entry
type TermCount struct {
	Term  string
	Count int64
}
