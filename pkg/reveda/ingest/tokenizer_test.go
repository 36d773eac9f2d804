package ingest

import (
	"strings"
	"testing"
)

func TestTokenizerBasic(t *testing.T) {
	tokenizer := NewTokenizer([]string{"the", "a", "and", "of"})

	tokens := tokenizer.Tokenize("The quick brown fox jumps over the lazy dog")

	for _, tok := range tokens {
		if tok == "the" {
			t.Error("Stopword 'the' should be filtered")
		}
	}

	expected := []string{"quick", "brown", "fox", "jumps", "over", "lazy", "dog"}
	if len(tokens) != len(expected) {
		t.Errorf("Expected %d tokens, got %d (%v)", len(expected), len(tokens), tokens)
	}
}

func TestTokenizerCaseAndPunctuation(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	tokens := tokenizer.Tokenize("It's GREAT, really!")

	want := []string{"it", "s", "great", "really"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d: got %q, want %q", i, tok, want[i])
		}
		if tok != strings.ToLower(tok) {
			t.Errorf("token %q should be lowercased", tok)
		}
	}
}

func TestTokenizerRemovesURLs(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	tokens := tokenizer.Tokenize("watch it at https://example.com/trailer?x=1 tonight")

	for _, tok := range tokens {
		if tok == "example" || tok == "com" || tok == "trailer" {
			t.Errorf("URL fragment %q survived tokenization", tok)
		}
	}
	if tokens[len(tokens)-1] != "tonight" {
		t.Errorf("expected trailing token 'tonight', got %v", tokens)
	}
}

func TestTokenizerStripsMarkup(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	tokens := tokenizer.Tokenize("A fine film.<br /><br />One of the best I have seen.")

	for _, tok := range tokens {
		if tok == "br" {
			t.Error("markup should not leak into tokens")
		}
	}
	joined := strings.Join(tokens, " ")
	if !strings.Contains(joined, "fine film") || !strings.Contains(joined, "best") {
		t.Errorf("markup stripping lost text content: %v", tokens)
	}
}

func TestTokenizerMinLength(t *testing.T) {
	tokenizer := NewTokenizer(nil)
	tokenizer.SetMinLength(3)

	tokens := tokenizer.Tokenize("it is a very good film")

	want := []string{"very", "good", "film"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	if tokens := tokenizer.Tokenize(""); len(tokens) != 0 {
		t.Errorf("empty input should produce no tokens, got %v", tokens)
	}
}

func TestTokenizerIdempotent(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	inputs := []string{
		"Great movie, loved it 10/10!",
		"An <i>odd</i> little film... but: WATCHABLE",
		"nothing special here",
	}
	for _, input := range inputs {
		first := tokenizer.Tokenize(input)
		second := tokenizer.Tokenize(strings.Join(first, " "))
		if len(first) != len(second) {
			t.Fatalf("tokenization not idempotent for %q: %v vs %v", input, first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("token %d changed on re-tokenization: %q vs %q", i, first[i], second[i])
			}
		}
	}
}

func TestTokenizerStemming(t *testing.T) {
	tokenizer := NewTokenizer(nil)
	tokenizer.SetStemming(true)

	tokens := tokenizer.Tokenize("loved watching movies")

	want := []string{"love", "watch", "movi"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("stem %d: got %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestAddRemoveStopword(t *testing.T) {
	tokenizer := NewTokenizer([]string{"the"})

	tokens := tokenizer.Tokenize("the cat")
	if len(tokens) != 1 || tokens[0] != "cat" {
		t.Error("Should filter 'the'")
	}

	tokenizer.RemoveStopword("the")
	if tokens := tokenizer.Tokenize("the cat"); len(tokens) != 2 {
		t.Error("'the' should not be filtered after removal")
	}

	tokenizer.AddStopword("the")
	if tokens := tokenizer.Tokenize("the cat"); len(tokens) != 1 {
		t.Error("Should filter 'the' after re-adding")
	}
}
