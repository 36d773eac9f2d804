package dataset

import "strings"

// Sentiment is the review class label
type Sentiment string

// Recognized sentiment classes. Unknown labels never reach the statistics.
const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Unknown  Sentiment = ""
)

// ParseSentiment normalizes a raw label value.
// Accepted: "positive"/"pos" and "negative"/"neg", case-insensitive.
func ParseSentiment(raw string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive", "pos":
		return Positive
	case "negative", "neg":
		return Negative
	default:
		return Unknown
	}
}

// Review is one parsed CSV row: review body plus its class label
type Review struct {
	Text  string
	Label Sentiment
}
