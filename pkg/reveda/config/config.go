package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/screenlab/reveda/pkg/reveda/internalerr"
	"github.com/screenlab/reveda/pkg/reveda/logodds"
	"github.com/screenlab/reveda/pkg/reveda/stats"
)

// Analysis holds the tunable analysis parameters
type Analysis struct {
	TopK            int     `yaml:"top_k"`
	MinTokenLength  int     `yaml:"min_token_length"`
	RemoveStopwords *bool   `yaml:"remove_stopwords"`
	Stem            bool    `yaml:"stem"`
	Alpha           float64 `yaml:"alpha"`
	LengthMetric    string  `yaml:"length_metric"`
}

// DefaultAnalysis returns the defaults used when no config file is given
func DefaultAnalysis() Analysis {
	return Analysis{
		TopK:           stats.DefaultTopK,
		MinTokenLength: 1,
		Alpha:          logodds.DefaultAlpha,
		LengthMetric:   string(stats.LengthTokensAfterFilter),
	}
}

// StopwordsEnabled reports the remove_stopwords setting; unset means on.
func (a Analysis) StopwordsEnabled() bool {
	return a.RemoveStopwords == nil || *a.RemoveStopwords
}

// Validate checks parameter ranges and the length metric name
func (a Analysis) Validate() error {
	if a.TopK < 0 {
		return fmt.Errorf("%w: top_k must not be negative", internalerr.ErrInvalidConfig)
	}
	if a.MinTokenLength < 0 {
		return fmt.Errorf("%w: min_token_length must not be negative", internalerr.ErrInvalidConfig)
	}
	if a.Alpha < 0 {
		return fmt.Errorf("%w: alpha must not be negative", internalerr.ErrInvalidConfig)
	}
	if _, err := stats.ParseLengthMetric(a.LengthMetric); err != nil {
		return err
	}
	return nil
}

// LoadAnalysis loads analysis parameters from a YAML file.
// Omitted fields keep their defaults.
func LoadAnalysis(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	a := DefaultAnalysis()
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
