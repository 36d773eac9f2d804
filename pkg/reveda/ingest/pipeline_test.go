package ingest

import "testing"

func TestPipelineProcess(t *testing.T) {
	tokenizer := NewTokenizer([]string{"the"})
	pipeline := NewPipeline(tokenizer)

	proc := pipeline.Process("The quick brown fox")

	if proc.RawTokenCount != 4 {
		t.Errorf("RawTokenCount: got %d, want 4", proc.RawTokenCount)
	}
	if len(proc.Tokens) != 3 {
		t.Errorf("filtered tokens: got %v, want 3 entries", proc.Tokens)
	}
	if proc.CharLength != len("the quick brown fox") {
		t.Errorf("CharLength: got %d, want %d", proc.CharLength, len("the quick brown fox"))
	}
}

func TestPipelineEmptyReview(t *testing.T) {
	pipeline := NewPipeline(NewTokenizer(nil))

	proc := pipeline.Process("")

	if proc.RawTokenCount != 0 || proc.CharLength != 0 || len(proc.Tokens) != 0 {
		t.Errorf("empty review should produce zero counts, got %+v", proc)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  So...   many\t\tspaces!  ")
	want := "so many spaces"
	if got != want {
		t.Errorf("Normalize: got %q, want %q", got, want)
	}
}

func TestNormalizeNonASCII(t *testing.T) {
	// Non-ASCII letters become separators, same as digits and punctuation
	got := Normalize("café 42 ok")
	want := "caf ok"
	if got != want {
		t.Errorf("Normalize: got %q, want %q", got, want)
	}
}
