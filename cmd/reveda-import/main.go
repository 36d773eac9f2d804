package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/screenlab/reveda/pkg/reveda"
	"github.com/screenlab/reveda/pkg/reveda/config"
	"github.com/screenlab/reveda/pkg/reveda/internalerr"
	"github.com/screenlab/reveda/pkg/reveda/store/sqlite"
)

func main() {
	var (
		input       = flag.String("input", "", "Path to reviews CSV (required)")
		dbPath      = flag.String("db", "", "Path to corpus database (required)")
		analysisCfg = flag.String("config", "", "Optional analysis config YAML")
		stoplistCfg = flag.String("stoplist", "", "Optional stopword list YAML")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *dbPath == "" {
		log.Fatal("--db required")
	}

	loader := config.Loader{
		AnalysisPath: *analysisCfg,
		StoplistPath: *stoplistCfg,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	engine := reveda.New(reveda.OptionsFromConfig(components.Analysis, components.Stoplist))

	n, err := engine.LoadCSV(*input)
	switch {
	case errors.Is(err, internalerr.ErrMissingColumns):
		log.Fatalf("dataset %s has no usable columns: %v", *input, err)
	case errors.Is(err, internalerr.ErrNoUsableRows):
		log.Fatalf("dataset %s yields no usable rows", *input)
	case err != nil:
		log.Fatalf("load dataset: %v", err)
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open corpus db: %v", err)
	}
	defer st.Close()

	if err := engine.Persist(ctx, st); err != nil {
		log.Fatalf("persist corpus: %v", err)
	}

	log.Printf("imported %d reviews from %s into %s", n, *input, *dbPath)
}
