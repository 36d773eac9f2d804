package stats

import (
	"fmt"
	"sort"

	"github.com/screenlab/reveda/pkg/reveda/dataset"
	"github.com/screenlab/reveda/pkg/reveda/ingest"
	"github.com/screenlab/reveda/pkg/reveda/internalerr"
)

// Class keys used throughout the frequency tables.
const (
	ClassPositive = "positive"
	ClassNegative = "negative"
	ClassOverall  = "overall"
)

// DefaultTopK bounds table extraction when the caller passes k <= 0.
const DefaultTopK = 50

// LengthMetric selects which measure feeds the per-class average length.
type LengthMetric string

const (
	// LengthChars measures the normalized review text in characters.
	LengthChars LengthMetric = "chars"
	// LengthTokensBeforeFilter counts candidate tokens before the
	// length/stopword filter runs.
	LengthTokensBeforeFilter LengthMetric = "tokens_before_filter"
	// LengthTokensAfterFilter counts tokens surviving the filter.
	// This matches the generated avg_length_tokens artifact field.
	LengthTokensAfterFilter LengthMetric = "tokens_after_filter"
)

// ParseLengthMetric validates a configured metric name.
func ParseLengthMetric(s string) (LengthMetric, error) {
	switch LengthMetric(s) {
	case LengthChars, LengthTokensBeforeFilter, LengthTokensAfterFilter:
		return LengthMetric(s), nil
	case "":
		return LengthTokensAfterFilter, nil
	default:
		return "", fmt.Errorf("%w: unknown length metric %q", internalerr.ErrInvalidConfig, s)
	}
}

// Aggregator accumulates per-class review statistics in a single pass.
// It is not safe for concurrent use; each load event owns one instance.
type Aggregator struct {
	pipeline *ingest.Pipeline

	reviews      int64
	classCounts  map[string]int64
	tokenCounts  map[string]map[string]int64
	bigramCounts map[string]map[string]int64
	docFreq      map[string]map[string]int64
	charLenSum   map[string]int64
	rawTokenSum  map[string]int64
	tokenSum     map[string]int64
}

// NewAggregator creates an empty aggregator around a processing pipeline
func NewAggregator(pipeline *ingest.Pipeline) *Aggregator {
	return &Aggregator{
		pipeline:     pipeline,
		classCounts:  make(map[string]int64),
		tokenCounts:  emptyTables(),
		bigramCounts: emptyTables(),
		docFreq:      emptyTables(),
		charLenSum:   make(map[string]int64),
		rawTokenSum:  make(map[string]int64),
		tokenSum:     make(map[string]int64),
	}
}

func emptyTables() map[string]map[string]int64 {
	return map[string]map[string]int64{
		ClassPositive: make(map[string]int64),
		ClassNegative: make(map[string]int64),
		ClassOverall:  make(map[string]int64),
	}
}

// Add consumes one review. Rows with an unrecognized label are excluded
// from every statistic, including the review total.
func (a *Aggregator) Add(text string, label dataset.Sentiment) {
	class := classKey(label)
	if class == "" {
		return
	}

	proc := a.pipeline.Process(text)

	a.reviews++
	a.classCounts[class]++

	for _, cls := range []string{class, ClassOverall} {
		a.charLenSum[cls] += int64(proc.CharLength)
		a.rawTokenSum[cls] += int64(proc.RawTokenCount)
		a.tokenSum[cls] += int64(len(proc.Tokens))
	}

	for _, tok := range proc.Tokens {
		a.tokenCounts[class][tok]++
		a.tokenCounts[ClassOverall][tok]++
	}

	// Adjacent post-filter tokens, joined with a single space
	for i := 0; i+1 < len(proc.Tokens); i++ {
		bigram := proc.Tokens[i] + " " + proc.Tokens[i+1]
		a.bigramCounts[class][bigram]++
		a.bigramCounts[ClassOverall][bigram]++
	}

	seen := make(map[string]struct{}, len(proc.Tokens))
	for _, tok := range proc.Tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		a.docFreq[class][tok]++
		a.docFreq[ClassOverall][tok]++
	}
}

// AddAll consumes a batch of parsed reviews
func (a *Aggregator) AddAll(reviews []dataset.Review) {
	for _, r := range reviews {
		a.Add(r.Text, r.Label)
	}
}

func classKey(label dataset.Sentiment) string {
	switch label {
	case dataset.Positive:
		return ClassPositive
	case dataset.Negative:
		return ClassNegative
	default:
		return ""
	}
}

// Stats exposes the aggregated counts as an immutable snapshot.
type Stats struct {
	Reviews      int64
	ClassCounts  map[string]int64
	TokenCounts  map[string]map[string]int64
	BigramCounts map[string]map[string]int64
	DocFreq      map[string]map[string]int64

	CharLenSum  map[string]int64
	RawTokenSum map[string]int64
	TokenSum    map[string]int64
}

// Snapshot returns a deep copy of the accumulated statistics.
func (a *Aggregator) Snapshot() Stats {
	return Stats{
		Reviews:      a.reviews,
		ClassCounts:  copyCounts(a.classCounts),
		TokenCounts:  copyTables(a.tokenCounts),
		BigramCounts: copyTables(a.bigramCounts),
		DocFreq:      copyTables(a.docFreq),
		CharLenSum:   copyCounts(a.charLenSum),
		RawTokenSum:  copyCounts(a.rawTokenSum),
		TokenSum:     copyCounts(a.tokenSum),
	}
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyTables(src map[string]map[string]int64) map[string]map[string]int64 {
	dst := make(map[string]map[string]int64, len(src))
	for cls, table := range src {
		dst[cls] = copyCounts(table)
	}
	return dst
}

// VocabSize is the number of distinct tokens across all considered reviews.
func (s Stats) VocabSize() int {
	return len(s.TokenCounts[ClassOverall])
}

// TotalTokens returns the number of filtered token occurrences in a class.
func (s Stats) TotalTokens(class string) int64 {
	return s.TokenSum[class]
}

// reviewCount returns the denominator for per-class averages.
func (s Stats) reviewCount(class string) int64 {
	if class == ClassOverall {
		return s.Reviews
	}
	return s.ClassCounts[class]
}

// AvgLength returns the average review length for a class under the given
// metric. A class with zero reviews yields exactly 0, never NaN.
func (s Stats) AvgLength(metric LengthMetric, class string) float64 {
	n := s.reviewCount(class)
	if n == 0 {
		return 0
	}
	var sum int64
	switch metric {
	case LengthChars:
		sum = s.CharLenSum[class]
	case LengthTokensBeforeFilter:
		sum = s.RawTokenSum[class]
	default:
		sum = s.TokenSum[class]
	}
	return float64(sum) / float64(n)
}

// TermCount is one frequency-table entry
type TermCount struct {
	Term  string
	Count int64
}

// TopTokens extracts the k most frequent tokens for a class.
// Ordering is count descending, ties broken by term ascending.
func (s Stats) TopTokens(class string, k int) []TermCount {
	return topK(s.TokenCounts[class], k)
}

// TopBigrams extracts the k most frequent bigrams for a class.
func (s Stats) TopBigrams(class string, k int) []TermCount {
	return topK(s.BigramCounts[class], k)
}

func topK(table map[string]int64, k int) []TermCount {
	if k <= 0 {
		k = DefaultTopK
	}
	entries := make([]TermCount, 0, len(table))
	for term, count := range table {
		entries = append(entries, TermCount{Term: term, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Term < entries[j].Term
		}
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// Summary holds the per-load headline numbers.
type Summary struct {
	Reviews          int64
	ClassCounts      map[string]int64
	AvgLengthByClass map[string]float64
	AvgTokensByClass map[string]float64
	AvgCharsByClass  map[string]float64
	VocabSize        int
}

// Summary derives the headline statistics under the configured metric.
// All three class keys are always present, zero-valued when empty.
func (s Stats) Summary(metric LengthMetric) Summary {
	classes := []string{ClassOverall, ClassPositive, ClassNegative}

	sum := Summary{
		Reviews:          s.Reviews,
		ClassCounts:      make(map[string]int64, 2),
		AvgLengthByClass: make(map[string]float64, len(classes)),
		AvgTokensByClass: make(map[string]float64, len(classes)),
		AvgCharsByClass:  make(map[string]float64, len(classes)),
		VocabSize:        s.VocabSize(),
	}
	sum.ClassCounts[ClassPositive] = s.ClassCounts[ClassPositive]
	sum.ClassCounts[ClassNegative] = s.ClassCounts[ClassNegative]

	for _, cls := range classes {
		sum.AvgLengthByClass[cls] = s.AvgLength(metric, cls)
		sum.AvgTokensByClass[cls] = s.AvgLength(LengthTokensAfterFilter, cls)
		sum.AvgCharsByClass[cls] = s.AvgLength(LengthChars, cls)
	}
	return sum
}
