package ingest

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// urlPattern matches scheme://nonspace URL substrings in lowercased text.
var urlPattern = regexp.MustCompile(`[a-z][a-z0-9+.-]*://\S+`)

// Normalize prepares raw review text for tokenization:
// markup is stripped, text is lowercased, URL substrings are removed,
// and everything that is not an ASCII letter collapses into single spaces.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := stripMarkup(raw)
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, " ")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// stripMarkup extracts the text content from HTML-laced review bodies.
// IMDB review dumps carry <br /> and similar inline tags.
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
