package report

import (
	"math"

	"github.com/screenlab/reveda/pkg/reveda/logodds"
	"github.com/screenlab/reveda/pkg/reveda/stats"
)

// The structs below are the wire contract of the generated JSON assets.
// The rendering page depends on these exact field names and nesting.

// Summary is the shape of summary.json
type Summary struct {
	NReviews        int64           `json:"n_reviews"`
	ClassCounts     ClassCounts     `json:"class_counts"`
	AvgLengthTokens LengthBreakdown `json:"avg_length_tokens"`
	AvgLengthChars  LengthBreakdown `json:"avg_length_chars"`
	VocabSize       int             `json:"vocab_size"`
	TopK            int             `json:"top_k"`
}

// ClassCounts holds recognized-label review counts per class
type ClassCounts struct {
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
}

// LengthBreakdown holds per-class average lengths, rounded to 2 decimals
type LengthBreakdown struct {
	Overall  float64 `json:"overall"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
}

// TermCount is one frequency entry in top_words.json / bigrams.json
type TermCount struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

// TermLists is the shape of top_words.json and bigrams.json
type TermLists struct {
	Overall  []TermCount `json:"overall"`
	Positive []TermCount `json:"positive"`
	Negative []TermCount `json:"negative"`
}

// AssocEntry is one scored term in log_odds.json
type AssocEntry struct {
	Term     string  `json:"term"`
	LogOdds  float64 `json:"log_odds"`
	PosCount int64   `json:"pos_count"`
	NegCount int64   `json:"neg_count"`
}

// Associations is the shape of log_odds.json
type Associations struct {
	Positive []AssocEntry `json:"positive"`
	Negative []AssocEntry `json:"negative"`
}

// Assets bundles everything one generation run produces
type Assets struct {
	Summary      Summary
	TopWords     TermLists
	Bigrams      TermLists
	Associations Associations
}

// Build maps an aggregation snapshot and scored associations onto the
// artifact shapes. topK is recorded in the summary alongside the truncated
// tables so the rendering page can label its charts.
func Build(s stats.Stats, mostPositive, mostNegative []logodds.Association, topK int) Assets {
	if topK <= 0 {
		topK = stats.DefaultTopK
	}

	return Assets{
		Summary: Summary{
			NReviews: s.Reviews,
			ClassCounts: ClassCounts{
				Positive: s.ClassCounts[stats.ClassPositive],
				Negative: s.ClassCounts[stats.ClassNegative],
			},
			AvgLengthTokens: lengths(s, stats.LengthTokensAfterFilter),
			AvgLengthChars:  lengths(s, stats.LengthChars),
			VocabSize:       s.VocabSize(),
			TopK:            topK,
		},
		TopWords: TermLists{
			Overall:  termCounts(s.TopTokens(stats.ClassOverall, topK)),
			Positive: termCounts(s.TopTokens(stats.ClassPositive, topK)),
			Negative: termCounts(s.TopTokens(stats.ClassNegative, topK)),
		},
		Bigrams: TermLists{
			Overall:  termCounts(s.TopBigrams(stats.ClassOverall, topK)),
			Positive: termCounts(s.TopBigrams(stats.ClassPositive, topK)),
			Negative: termCounts(s.TopBigrams(stats.ClassNegative, topK)),
		},
		Associations: Associations{
			Positive: assocEntries(mostPositive),
			Negative: assocEntries(mostNegative),
		},
	}
}

func lengths(s stats.Stats, metric stats.LengthMetric) LengthBreakdown {
	return LengthBreakdown{
		Overall:  round2(s.AvgLength(metric, stats.ClassOverall)),
		Positive: round2(s.AvgLength(metric, stats.ClassPositive)),
		Negative: round2(s.AvgLength(metric, stats.ClassNegative)),
	}
}

func termCounts(entries []stats.TermCount) []TermCount {
	out := make([]TermCount, len(entries))
	for i, e := range entries {
		out[i] = TermCount{Term: e.Term, Count: e.Count}
	}
	return out
}

func assocEntries(entries []logodds.Association) []AssocEntry {
	out := make([]AssocEntry, len(entries))
	for i, e := range entries {
		out[i] = AssocEntry{
			Term:     e.Term,
			LogOdds:  round4(e.LogOdds),
			PosCount: e.PosCount,
			NegCount: e.NegCount,
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
