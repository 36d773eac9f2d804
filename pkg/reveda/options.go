package reveda

import (
	"github.com/screenlab/reveda/pkg/reveda/config"
	"github.com/screenlab/reveda/pkg/reveda/stats"
)

// OptionsFromConfig maps loaded analysis configuration onto engine options.
// stoplist overrides the built-in stopword set when non-nil.
func OptionsFromConfig(a config.Analysis, stoplist []string) Options {
	metric, err := stats.ParseLengthMetric(a.LengthMetric)
	if err != nil {
		metric = stats.LengthTokensAfterFilter
	}

	return Options{
		TopK:            a.TopK,
		MinTokenLength:  a.MinTokenLength,
		RemoveStopwords: a.StopwordsEnabled(),
		Stopwords:       stoplist,
		Stem:            a.Stem,
		Alpha:           a.Alpha,
		LengthMetric:    metric,
	}
}
