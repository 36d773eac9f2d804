package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/screenlab/reveda/pkg/reveda/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	reviews []store.Review
	counts  map[tableKey]map[string]int64
}

type tableKey struct {
	Kind  string
	Class string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		nextID: 1,
		counts: make(map[tableKey]map[string]int64),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// AddReviews appends a batch of reviews.
func (s *Store) AddReviews(ctx context.Context, reviews []store.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range reviews {
		if r.Text == "" || r.Label == "" {
			continue
		}
		r.ID = s.nextID
		s.nextID++
		s.reviews = append(s.reviews, r)
	}
	return nil
}

// Reviews returns all stored reviews in insertion order.
func (s *Store) Reviews(ctx context.Context) ([]store.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

// ClassCounts returns stored review counts per label.
func (s *Store) ClassCounts(ctx context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, r := range s.reviews {
		counts[r.Label]++
	}
	return counts, nil
}

// ReplaceTermCounts swaps one count table.
func (s *Store) ReplaceTermCounts(ctx context.Context, kind, class string, counts map[string]int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := make(map[string]int64, len(counts))
	for term, count := range counts {
		if term == "" || count == 0 {
			continue
		}
		table[term] = count
	}
	s.counts[tableKey{Kind: kind, Class: class}] = table
	return nil
}

// TermCounts loads one full count table.
func (s *Store) TermCounts(ctx context.Context, kind, class string) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table := s.counts[tableKey{Kind: kind, Class: class}]
	out := make(map[string]int64, len(table))
	for term, count := range table {
		out[term] = count
	}
	return out, nil
}

// TopTerms returns the k highest counts, ties broken by term ascending.
func (s *Store) TopTerms(ctx context.Context, kind, class string, k int) ([]store.TermCount, error) {
	if k <= 0 {
		k = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	table := s.counts[tableKey{Kind: kind, Class: class}]
	terms := make([]store.TermCount, 0, len(table))
	for term, count := range table {
		terms = append(terms, store.TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count == terms[j].Count {
			return terms[i].Term < terms[j].Term
		}
		return terms[i].Count > terms[j].Count
	})
	if len(terms) > k {
		terms = terms[:k]
	}
	return terms, nil
}

// TotalTerms sums all counts in one table.
func (s *Store) TotalTerms(ctx context.Context, kind, class string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, count := range s.counts[tableKey{Kind: kind, Class: class}] {
		total += count
	}
	return total, nil
}

// VocabSize counts distinct terms in one table.
func (s *Store) VocabSize(ctx context.Context, kind, class string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.counts[tableKey{Kind: kind, Class: class}])), nil
}

// Clear wipes all stored data.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = nil
	s.nextID = 1
	s.counts = make(map[tableKey]map[string]int64)
	return nil
}
