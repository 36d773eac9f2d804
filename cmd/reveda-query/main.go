package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/screenlab/reveda/pkg/reveda"
	"github.com/screenlab/reveda/pkg/reveda/dataset"
	"github.com/screenlab/reveda/pkg/reveda/logodds"
	"github.com/screenlab/reveda/pkg/reveda/report"
	"github.com/screenlab/reveda/pkg/reveda/stats"
	"github.com/screenlab/reveda/pkg/reveda/store"
	"github.com/screenlab/reveda/pkg/reveda/store/sqlite"
)

func main() {
	var (
		dbPath   = flag.String("db", "", "Path to corpus database (required)")
		topWords = flag.Int("top-words", 0, "Print the top N tokens")
		bigrams  = flag.Int("bigrams", 0, "Print the top N bigrams")
		class    = flag.String("class", stats.ClassOverall, "Class for term queries: overall, positive, negative")
		logOdds  = flag.Int("log-odds", 0, "Print the N most distinctive terms per class")
		alpha    = flag.Float64("alpha", logodds.DefaultAlpha, "Log-odds smoothing constant")
		summary  = flag.Bool("summary", false, "Print summary statistics")
		minLen   = flag.Int("min-len", 0, "Re-aggregate stored reviews with this minimum token length (summary only)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open corpus db: %v", err)
	}
	defer st.Close()

	switch {
	case *topWords > 0:
		printTerms(ctx, st, store.KindToken, *class, *topWords)
	case *bigrams > 0:
		printTerms(ctx, st, store.KindBigram, *class, *bigrams)
	case *logOdds > 0:
		printLogOdds(ctx, st, *logOdds, *alpha)
	case *summary:
		printSummary(ctx, st, *minLen)
	default:
		log.Fatal("one of --top-words, --bigrams, --log-odds, --summary required")
	}
}

func printTerms(ctx context.Context, st store.Store, kind, class string, k int) {
	terms, err := st.TopTerms(ctx, kind, class, k)
	if err != nil {
		log.Fatalf("query %s counts: %v", kind, err)
	}

	out := make([]report.TermCount, len(terms))
	for i, tc := range terms {
		out[i] = report.TermCount{Term: tc.Term, Count: tc.Count}
	}
	printJSON(out)
}

func printLogOdds(ctx context.Context, st store.Store, k int, alpha float64) {
	pos, err := st.TermCounts(ctx, store.KindToken, stats.ClassPositive)
	if err != nil {
		log.Fatalf("query positive counts: %v", err)
	}
	neg, err := st.TermCounts(ctx, store.KindToken, stats.ClassNegative)
	if err != nil {
		log.Fatalf("query negative counts: %v", err)
	}

	scorer := logodds.NewScorer(alpha)
	mostPositive, mostNegative := scorer.Rank(pos, neg, k)

	snap := stats.Stats{}
	assets := report.Build(snap, mostPositive, mostNegative, k)
	printJSON(assets.Associations)
}

// printSummary re-aggregates the stored reviews, so parameter changes like
// a different minimum token length work without the original CSV.
func printSummary(ctx context.Context, st store.Store, minLen int) {
	rows, err := st.Reviews(ctx)
	if err != nil {
		log.Fatalf("load stored reviews: %v", err)
	}

	reviews := make([]dataset.Review, 0, len(rows))
	for _, r := range rows {
		reviews = append(reviews, dataset.Review{
			Text:  r.Text,
			Label: dataset.ParseSentiment(r.Label),
		})
	}

	opts := reveda.DefaultOptions()
	if minLen > 0 {
		opts.MinTokenLength = minLen
	}
	engine := reveda.New(opts)
	engine.SetReviews(reviews)

	res, err := engine.Aggregate()
	if err != nil {
		log.Fatalf("aggregate stored reviews: %v", err)
	}

	assets := report.Build(res.Stats, res.MostPositive, res.MostNegative, opts.TopK)
	printJSON(assets.Summary)
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal output: %v", err)
	}
	fmt.Println(string(out))
}
