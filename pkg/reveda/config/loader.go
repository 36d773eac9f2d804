package config

import (
	"fmt"

	"github.com/screenlab/reveda/pkg/reveda/ingest"
	"github.com/screenlab/reveda/pkg/reveda/logodds"
	"github.com/screenlab/reveda/pkg/reveda/stats"
	"github.com/screenlab/reveda/pkg/reveda/stopwords"
)

// Loader loads configuration files and constructs ready components
type Loader struct {
	AnalysisPath string
	StoplistPath string
}

// Components holds the constructed analysis components. Stoplist is the
// custom stopword list that was loaded, nil when the built-in list applies.
type Components struct {
	Analysis     Analysis
	Stoplist     []string
	Pipeline     *ingest.Pipeline
	Scorer       *logodds.Scorer
	LengthMetric stats.LengthMetric
}

// Load reads the configuration files and returns initialized components.
// Empty paths fall back to defaults: built-in English stopwords and the
// default analysis parameters.
func (l *Loader) Load() (*Components, error) {
	analysis := DefaultAnalysis()
	if l.AnalysisPath != "" {
		loaded, err := LoadAnalysis(l.AnalysisPath)
		if err != nil {
			return nil, fmt.Errorf("load analysis config: %w", err)
		}
		analysis = *loaded
	}

	var stoplist []string
	if l.StoplistPath != "" {
		loaded, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stoplist = loaded.Terms
	}

	return Build(analysis, stoplist)
}

// Build constructs components from finalized analysis parameters.
// stoplist overrides the built-in stopword set when non-nil; it is
// ignored entirely when stopword removal is off.
func Build(analysis Analysis, stoplist []string) (*Components, error) {
	if err := analysis.Validate(); err != nil {
		return nil, err
	}

	var stops []string
	if analysis.StopwordsEnabled() {
		stops = stopwords.Default()
		if stoplist != nil {
			stops = stoplist
		}
	}

	tokenizer := ingest.NewTokenizer(stops)
	tokenizer.SetMinLength(analysis.MinTokenLength)
	tokenizer.SetStemming(analysis.Stem)

	metric, err := stats.ParseLengthMetric(analysis.LengthMetric)
	if err != nil {
		return nil, err
	}

	return &Components{
		Analysis:     analysis,
		Stoplist:     stoplist,
		Pipeline:     ingest.NewPipeline(tokenizer),
		Scorer:       logodds.NewScorer(analysis.Alpha),
		LengthMetric: metric,
	}, nil
}
