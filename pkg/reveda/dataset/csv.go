package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/screenlab/reveda/pkg/reveda/internalerr"
)

// Accepted header aliases, in priority order. Matching is case-insensitive
// and resolved once per file, not per row.
var (
	textAliases  = []string{"review", "text", "content"}
	labelAliases = []string{"sentiment", "label"}
)

// LoadCSV reads review,sentiment rows from a CSV file.
// Rows with unrecognized labels or empty text are dropped silently;
// a file that yields zero usable rows is an error.
func LoadCSV(path string) ([]Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	reviews, err := ReadReviews(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return reviews, nil
}

// ReadReviews parses CSV review data from a reader. The first record must
// be a header containing a text column and a label column (see aliases).
func ReadReviews(r io.Reader) ([]Review, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, internalerr.ErrNoUsableRows
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	textIdx, labelIdx, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var reviews []Review
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// Malformed rows are skipped, not fatal
			continue
		}
		if err != nil {
			// Anything else is an underlying read failure, not row noise
			return nil, fmt.Errorf("read rows: %w", err)
		}
		if textIdx >= len(record) || labelIdx >= len(record) {
			continue
		}

		text := strings.TrimSpace(record[textIdx])
		label := ParseSentiment(record[labelIdx])
		if text == "" || label == Unknown {
			continue
		}
		reviews = append(reviews, Review{Text: text, Label: label})
	}

	if len(reviews) == 0 {
		return nil, internalerr.ErrNoUsableRows
	}
	return reviews, nil
}

// resolveColumns maps the header to fixed column indexes using the alias
// lists. Both a text and a label column are required.
func resolveColumns(header []string) (textIdx, labelIdx int, err error) {
	textIdx = findColumn(header, textAliases)
	labelIdx = findColumn(header, labelAliases)

	if textIdx < 0 || labelIdx < 0 {
		return 0, 0, fmt.Errorf("%w: need one of %v and one of %v",
			internalerr.ErrMissingColumns, textAliases, labelAliases)
	}
	return textIdx, labelIdx, nil
}

func findColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), alias) {
				return i
			}
		}
	}
	return -1
}
