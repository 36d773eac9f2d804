package ingest

import "strings"

// Pipeline orchestrates the per-review processing flow:
// raw text → normalization → candidate split → token filtering
type Pipeline struct {
	tokenizer *Tokenizer
}

// NewPipeline creates a processing pipeline around the given tokenizer
func NewPipeline(tokenizer *Tokenizer) *Pipeline {
	return &Pipeline{tokenizer: tokenizer}
}

// ProcessedReview represents one review after text processing.
// RawTokenCount is taken before the length/stopword filter so callers can
// choose either length metric; CharLength measures the normalized text.
type ProcessedReview struct {
	Tokens        []string
	RawTokenCount int
	CharLength    int
}

// Process runs one review body through the full pipeline
func (p *Pipeline) Process(text string) ProcessedReview {
	norm := Normalize(text)
	candidates := strings.Fields(norm)

	return ProcessedReview{
		Tokens:        p.tokenizer.Filter(candidates),
		RawTokenCount: len(candidates),
		CharLength:    len(norm),
	}
}

// Tokenizer exposes the pipeline's tokenizer for stopword adjustments
func (p *Pipeline) Tokenizer() *Tokenizer {
	return p.tokenizer
}
