package reveda

import (
	"context"
	"fmt"
	"io"

	"github.com/screenlab/reveda/pkg/reveda/dataset"
	"github.com/screenlab/reveda/pkg/reveda/ingest"
	"github.com/screenlab/reveda/pkg/reveda/internalerr"
	"github.com/screenlab/reveda/pkg/reveda/logodds"
	"github.com/screenlab/reveda/pkg/reveda/stats"
	"github.com/screenlab/reveda/pkg/reveda/stopwords"
	"github.com/screenlab/reveda/pkg/reveda/store"
)

// Options configures one analysis pass
type Options struct {
	TopK            int
	MinTokenLength  int
	RemoveStopwords bool
	Stopwords       []string // optional override; nil means the built-in list
	Stem            bool
	Alpha           float64
	LengthMetric    stats.LengthMetric
}

// DefaultOptions returns the standard analysis configuration
func DefaultOptions() Options {
	return Options{
		TopK:            stats.DefaultTopK,
		MinTokenLength:  1,
		RemoveStopwords: true,
		Alpha:           logodds.DefaultAlpha,
		LengthMetric:    stats.LengthTokensAfterFilter,
	}
}

// Engine is the main analysis facade. It keeps the last-loaded dataset in
// memory so a parameter change triggers a full recomputation without
// re-parsing the CSV. Each Aggregate call produces a fresh result that
// supersedes the previous one; the Engine is single-goroutine by design.
type Engine struct {
	opts    Options
	reviews []dataset.Review
}

// New creates an Engine with the given options
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Options returns the current analysis options
func (e *Engine) Options() Options {
	return e.opts
}

// SetOptions replaces the analysis options. The loaded dataset is kept;
// the next Aggregate call recomputes everything under the new parameters.
func (e *Engine) SetOptions(opts Options) {
	e.opts = opts
}

// LoadCSV loads a review dataset from a CSV file, replacing any
// previously loaded data. Returns the number of usable rows.
func (e *Engine) LoadCSV(path string) (int, error) {
	reviews, err := dataset.LoadCSV(path)
	if err != nil {
		return 0, err
	}
	e.reviews = reviews
	return len(reviews), nil
}

// Load loads a review dataset from a reader (e.g. an uploaded file),
// funneling into the same parsing path as LoadCSV.
func (e *Engine) Load(r io.Reader) (int, error) {
	reviews, err := dataset.ReadReviews(r)
	if err != nil {
		return 0, err
	}
	e.reviews = reviews
	return len(reviews), nil
}

// SetReviews installs an already-parsed dataset
func (e *Engine) SetReviews(reviews []dataset.Review) {
	e.reviews = reviews
}

// Result is one full analysis pass over the loaded dataset
type Result struct {
	Stats        stats.Stats
	Summary      stats.Summary
	MostPositive []logodds.Association
	MostNegative []logodds.Association
}

// Aggregate runs a full recomputation over the loaded dataset under the
// current options. An empty dataset is an error, not an empty chart.
func (e *Engine) Aggregate() (Result, error) {
	if len(e.reviews) == 0 {
		return Result{}, internalerr.ErrNoUsableRows
	}

	agg := stats.NewAggregator(e.pipeline())
	agg.AddAll(e.reviews)
	snap := agg.Snapshot()

	if snap.Reviews == 0 {
		return Result{}, internalerr.ErrNoUsableRows
	}

	scorer := logodds.NewScorer(e.opts.Alpha)
	pos, neg := scorer.Rank(
		snap.TokenCounts[stats.ClassPositive],
		snap.TokenCounts[stats.ClassNegative],
		e.opts.TopK,
	)

	return Result{
		Stats:        snap,
		Summary:      snap.Summary(e.opts.LengthMetric),
		MostPositive: pos,
		MostNegative: neg,
	}, nil
}

// Persist writes the loaded dataset and its count tables into a store so
// later queries can re-rank without the original CSV.
func (e *Engine) Persist(ctx context.Context, st store.Store) error {
	res, err := e.Aggregate()
	if err != nil {
		return err
	}

	if err := st.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}

	rows := make([]store.Review, len(e.reviews))
	for i, r := range e.reviews {
		rows[i] = store.Review{Text: r.Text, Label: string(r.Label)}
	}
	if err := st.AddReviews(ctx, rows); err != nil {
		return fmt.Errorf("store reviews: %w", err)
	}

	tables := map[string]map[string]map[string]int64{
		store.KindToken:   res.Stats.TokenCounts,
		store.KindBigram:  res.Stats.BigramCounts,
		store.KindDocFreq: res.Stats.DocFreq,
	}
	for kind, classes := range tables {
		for class, counts := range classes {
			if err := st.ReplaceTermCounts(ctx, kind, class, counts); err != nil {
				return fmt.Errorf("store %s counts for %s: %w", kind, class, err)
			}
		}
	}
	return nil
}

func (e *Engine) pipeline() *ingest.Pipeline {
	var stops []string
	if e.opts.RemoveStopwords {
		stops = e.opts.Stopwords
		if stops == nil {
			stops = stopwords.Default()
		}
	}

	tokenizer := ingest.NewTokenizer(stops)
	tokenizer.SetMinLength(e.opts.MinTokenLength)
	tokenizer.SetStemming(e.opts.Stem)
	return ingest.NewPipeline(tokenizer)
}
