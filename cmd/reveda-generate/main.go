package main

import (
	"errors"
	"flag"
	"log"

	"github.com/screenlab/reveda/pkg/reveda/config"
	"github.com/screenlab/reveda/pkg/reveda/dataset"
	"github.com/screenlab/reveda/pkg/reveda/internalerr"
	"github.com/screenlab/reveda/pkg/reveda/report"
	"github.com/screenlab/reveda/pkg/reveda/stats"
)

func main() {
	var (
		input         = flag.String("input", "", "Path to reviews CSV (required)")
		outdir        = flag.String("outdir", "", "Directory to write JSON assets (required)")
		analysisCfg   = flag.String("config", "", "Optional analysis config YAML")
		stoplistCfg   = flag.String("stoplist", "", "Optional stopword list YAML")
		topK          = flag.Int("top-k", 0, "Top K items to keep (overrides config)")
		minLen        = flag.Int("min-len", 0, "Minimum token length (overrides config)")
		keepStopwords = flag.Bool("keep-stopwords", false, "Disable stopword removal")
		alpha         = flag.Float64("alpha", 0, "Log-odds smoothing constant (overrides config)")
		stem          = flag.Bool("stem", false, "Enable snowball stemming")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *outdir == "" {
		log.Fatal("--outdir required")
	}

	components, err := loadComponents(*analysisCfg, *stoplistCfg, *topK, *minLen, *keepStopwords, *alpha, *stem)
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	reviews, err := dataset.LoadCSV(*input)
	switch {
	case errors.Is(err, internalerr.ErrMissingColumns):
		log.Fatalf("dataset %s has no usable columns: %v", *input, err)
	case errors.Is(err, internalerr.ErrNoUsableRows):
		log.Fatalf("dataset %s yields no usable rows", *input)
	case err != nil:
		log.Fatalf("load dataset: %v", err)
	}

	aggregator := stats.NewAggregator(components.Pipeline)
	aggregator.AddAll(reviews)
	snap := aggregator.Snapshot()

	pos, neg := components.Scorer.Rank(
		snap.TokenCounts[stats.ClassPositive],
		snap.TokenCounts[stats.ClassNegative],
		components.Analysis.TopK,
	)

	assets := report.Build(snap, pos, neg, components.Analysis.TopK)

	writer, err := report.NewWriter(*outdir)
	if err != nil {
		log.Fatalf("prepare output: %v", err)
	}
	manifest, err := writer.Write(assets, *input)
	if err != nil {
		log.Fatalf("write assets: %v", err)
	}

	log.Printf("wrote %d assets to %s (run %s, %d reviews, vocab %d)",
		len(manifest.Files), *outdir, manifest.RunID, snap.Reviews, snap.VocabSize())
}

// loadComponents loads YAML configuration, applies flag overrides, and
// builds the processing components.
func loadComponents(analysisPath, stoplistPath string, topK, minLen int, keepStopwords bool, alpha float64, stem bool) (*config.Components, error) {
	analysis := config.DefaultAnalysis()
	if analysisPath != "" {
		loaded, err := config.LoadAnalysis(analysisPath)
		if err != nil {
			return nil, err
		}
		analysis = *loaded
	}

	if topK > 0 {
		analysis.TopK = topK
	}
	if minLen > 0 {
		analysis.MinTokenLength = minLen
	}
	if keepStopwords {
		off := false
		analysis.RemoveStopwords = &off
	}
	if alpha > 0 {
		analysis.Alpha = alpha
	}
	if stem {
		analysis.Stem = true
	}

	var stoplist []string
	if stoplistPath != "" {
		loaded, err := config.LoadStoplist(stoplistPath)
		if err != nil {
			return nil, err
		}
		stoplist = loaded.Terms
	}

	return config.Build(analysis, stoplist)
}
