package stopwords

// defaultStops is a compact English stopword list for review analysis.
// Negations (no, not, nor) are deliberately absent: they carry sentiment
// signal and must stay in the vocabulary.
var defaultStops = map[string]struct{}{
	// Articles and determiners
	"a": {}, "an": {}, "the": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"each": {}, "few": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"any": {}, "all": {}, "both": {}, "same": {}, "own": {},
	// Pronouns
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {},
	"ourselves": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {}, "he": {}, "him": {}, "his": {}, "himself": {}, "she": {},
	"her": {}, "hers": {}, "herself": {}, "it": {}, "its": {}, "itself": {},
	"they": {}, "them": {}, "their": {}, "theirs": {}, "themselves": {},
	"who": {}, "whom": {}, "which": {}, "what": {},
	// Auxiliaries and modals
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "having": {}, "do": {},
	"does": {}, "did": {}, "doing": {}, "will": {}, "would": {}, "should": {},
	"can": {}, "could": {}, "won": {},
	// Conjunctions and complementizers
	"and": {}, "but": {}, "or": {}, "because": {}, "as": {}, "if": {},
	"while": {}, "than": {}, "so": {},
	// Prepositions
	"of": {}, "at": {}, "by": {}, "for": {}, "with": {}, "about": {},
	"against": {}, "between": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "to": {}, "from": {},
	"up": {}, "down": {}, "in": {}, "out": {}, "on": {}, "off": {}, "over": {},
	"under": {},
	// Adverbs and fillers
	"again": {}, "further": {}, "then": {}, "once": {}, "here": {}, "there": {},
	"when": {}, "where": {}, "why": {}, "how": {}, "only": {}, "very": {},
	"just": {}, "now": {}, "too": {}, "until": {},
	// Contraction fragments left over after punctuation stripping
	"s": {}, "t": {}, "ll": {}, "m": {}, "re": {}, "d": {}, "ve": {},
	"o": {}, "y": {}, "ma": {},
}

// Default returns the built-in English stopword list.
func Default() []string {
	out := make([]string, 0, len(defaultStops))
	for w := range defaultStops {
		out = append(out, w)
	}
	return out
}

// IsDefault reports whether a token is in the built-in list.
func IsDefault(token string) bool {
	_, ok := defaultStops[token]
	return ok
}
