package ingest

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Tokenizer handles text tokenization and normalization
type Tokenizer struct {
	stopwords map[string]struct{}
	minLen    int
	stem      bool
}

// NewTokenizer creates a new tokenizer with the given stopword list.
// Pass an empty slice to keep every token.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops, minLen: 1}
}

// SetMinLength sets the minimum token length. Tokens shorter than n are
// dropped. Values below 1 are clamped to 1.
func (t *Tokenizer) SetMinLength(n int) {
	if n < 1 {
		n = 1
	}
	t.minLen = n
}

// SetStemming toggles snowball stemming of surviving tokens.
// Example: "loved" → "love", "movies" → "movi"
func (t *Tokenizer) SetStemming(on bool) {
	t.stem = on
}

// Tokenize splits text into normalized tokens in original order,
// applying the length, stopword, and stemming configuration.
func (t *Tokenizer) Tokenize(text string) []string {
	return t.Filter(strings.Fields(Normalize(text)))
}

// Filter applies the length/stopword/stemming rules to already-normalized
// candidate tokens. Candidates must be lowercase alphabetic words.
func (t *Tokenizer) Filter(candidates []string) []string {
	var tokens []string
	for _, word := range candidates {
		if len(word) < t.minLen {
			continue
		}
		if t.isStopword(word) {
			continue
		}
		if t.stem {
			if stemmed, err := snowball.Stem(word, "english", false); err == nil && stemmed != "" {
				word = stemmed
			}
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

// AddStopword adds a word to the stopword list
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}
