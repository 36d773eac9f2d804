package stats

import (
	"testing"

	"github.com/screenlab/reveda/pkg/reveda/dataset"
	"github.com/screenlab/reveda/pkg/reveda/ingest"
)

func newAggregator(stops []string, minLen int) *Aggregator {
	tokenizer := ingest.NewTokenizer(stops)
	tokenizer.SetMinLength(minLen)
	return NewAggregator(ingest.NewPipeline(tokenizer))
}

func TestAggregatorTwoReviews(t *testing.T) {
	a := newAggregator(nil, 1)
	a.Add("Great movie loved it", dataset.Positive)
	a.Add("Terrible waste of time", dataset.Negative)

	s := a.Snapshot()

	if s.Reviews != 2 {
		t.Errorf("Reviews: got %d, want 2", s.Reviews)
	}
	if s.ClassCounts[ClassPositive] != 1 || s.ClassCounts[ClassNegative] != 1 {
		t.Errorf("class counts wrong: %v", s.ClassCounts)
	}
	if got := s.VocabSize(); got != 8 {
		t.Errorf("VocabSize: got %d, want 8", got)
	}
	for _, term := range []string{"great", "movie", "loved", "it", "terrible", "waste", "of", "time"} {
		if s.TokenCounts[ClassOverall][term] != 1 {
			t.Errorf("overall count for %q: got %d, want 1", term, s.TokenCounts[ClassOverall][term])
		}
	}
	if got := s.AvgLength(LengthTokensAfterFilter, ClassPositive); got != 4 {
		t.Errorf("positive avg tokens: got %v, want 4", got)
	}
	if got := s.AvgLength(LengthTokensAfterFilter, ClassNegative); got != 4 {
		t.Errorf("negative avg tokens: got %v, want 4", got)
	}
}

func TestAggregatorSkipsUnknownLabels(t *testing.T) {
	a := newAggregator(nil, 1)
	a.Add("great film", dataset.Positive)
	a.Add("so so film", dataset.Unknown)

	s := a.Snapshot()

	if s.Reviews != 1 {
		t.Errorf("unknown label should not count toward totals, got %d reviews", s.Reviews)
	}
	if s.TokenCounts[ClassOverall]["so"] != 0 {
		t.Error("tokens of unknown-label rows must not reach frequency tables")
	}
}

func TestAggregatorEmptySnapshot(t *testing.T) {
	s := newAggregator(nil, 1).Snapshot()

	if s.Reviews != 0 || s.VocabSize() != 0 {
		t.Errorf("empty aggregator: %+v", s)
	}
	for _, metric := range []LengthMetric{LengthChars, LengthTokensBeforeFilter, LengthTokensAfterFilter} {
		for _, class := range []string{ClassOverall, ClassPositive, ClassNegative} {
			if got := s.AvgLength(metric, class); got != 0 {
				t.Errorf("AvgLength(%s,%s) on empty data: got %v, want exactly 0", metric, class, got)
			}
		}
	}
	if top := s.TopTokens(ClassOverall, 10); len(top) != 0 {
		t.Errorf("expected empty top list, got %v", top)
	}
}

func TestAggregatorTokenConservation(t *testing.T) {
	a := newAggregator([]string{"the"}, 2)
	a.Add("The film the whole film is ok", dataset.Positive)
	a.Add("A bad film", dataset.Negative)

	s := a.Snapshot()

	var tableSum int64
	for _, count := range s.TokenCounts[ClassOverall] {
		tableSum += count
	}
	if tableSum != s.TotalTokens(ClassOverall) {
		t.Errorf("overall table sum %d != token sum %d", tableSum, s.TotalTokens(ClassOverall))
	}
	if s.TotalTokens(ClassPositive)+s.TotalTokens(ClassNegative) != s.TotalTokens(ClassOverall) {
		t.Error("class token sums must add up to overall")
	}
}

func TestTopTokensTieBreak(t *testing.T) {
	a := newAggregator([]string{"the", "on"}, 1)
	a.Add("the the the the the sat sat sat cat cat cat on", dataset.Positive)

	s := a.Snapshot()

	top := s.TopTokens(ClassOverall, 2)
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].Term != "cat" || top[1].Term != "sat" {
		t.Errorf("tie break should be lexicographic: got %v", top)
	}
	if top[0].Count != 3 || top[1].Count != 3 {
		t.Errorf("counts wrong: %v", top)
	}
}

func TestAggregatorBigrams(t *testing.T) {
	a := newAggregator(nil, 1)
	a.Add("great movie great movie", dataset.Positive)

	s := a.Snapshot()

	if got := s.BigramCounts[ClassPositive]["great movie"]; got != 2 {
		t.Errorf("bigram 'great movie': got %d, want 2", got)
	}
	if got := s.BigramCounts[ClassPositive]["movie great"]; got != 1 {
		t.Errorf("bigram 'movie great': got %d, want 1", got)
	}
	if got := s.BigramCounts[ClassOverall]["great movie"]; got != 2 {
		t.Errorf("overall bigram table: got %d, want 2", got)
	}
}

func TestAggregatorDocFreq(t *testing.T) {
	a := newAggregator(nil, 1)
	a.Add("fine fine fine", dataset.Positive)
	a.Add("fine indeed", dataset.Positive)

	s := a.Snapshot()

	if got := s.DocFreq[ClassPositive]["fine"]; got != 2 {
		t.Errorf("doc freq counts reviews, not occurrences: got %d, want 2", got)
	}
	if got := s.TokenCounts[ClassPositive]["fine"]; got != 4 {
		t.Errorf("token count: got %d, want 4", got)
	}
}

func TestAggregatorLengthMetrics(t *testing.T) {
	a := newAggregator([]string{"the"}, 1)
	a.Add("the good film", dataset.Positive)

	s := a.Snapshot()

	if got := s.AvgLength(LengthTokensBeforeFilter, ClassPositive); got != 3 {
		t.Errorf("before-filter metric: got %v, want 3", got)
	}
	if got := s.AvgLength(LengthTokensAfterFilter, ClassPositive); got != 2 {
		t.Errorf("after-filter metric: got %v, want 2", got)
	}
	if got := s.AvgLength(LengthChars, ClassPositive); got != float64(len("the good film")) {
		t.Errorf("char metric: got %v, want %d", got, len("the good film"))
	}
}

func TestSummaryAllClassesPresent(t *testing.T) {
	a := newAggregator(nil, 1)
	a.Add("good", dataset.Positive)

	sum := a.Snapshot().Summary(LengthTokensAfterFilter)

	if sum.Reviews != 1 || sum.VocabSize != 1 {
		t.Errorf("summary headline wrong: %+v", sum)
	}
	if sum.ClassCounts[ClassNegative] != 0 {
		t.Errorf("absent class should be zero, got %d", sum.ClassCounts[ClassNegative])
	}
	if got := sum.AvgLengthByClass[ClassNegative]; got != 0 {
		t.Errorf("avg for empty class: got %v, want exactly 0", got)
	}
	if got := sum.AvgLengthByClass[ClassPositive]; got != 1 {
		t.Errorf("avg for positive: got %v, want 1", got)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	a := newAggregator(nil, 1)
	a.Add("good film", dataset.Positive)

	s := a.Snapshot()
	s.TokenCounts[ClassOverall]["good"] = 99
	a.Add("good again", dataset.Positive)

	fresh := a.Snapshot()
	if fresh.TokenCounts[ClassOverall]["good"] != 2 {
		t.Errorf("snapshot mutation leaked into aggregator: got %d", fresh.TokenCounts[ClassOverall]["good"])
	}
}

func TestParseLengthMetric(t *testing.T) {
	if m, err := ParseLengthMetric(""); err != nil || m != LengthTokensAfterFilter {
		t.Errorf("empty metric should default: %v %v", m, err)
	}
	if _, err := ParseLengthMetric("words"); err == nil {
		t.Error("unknown metric should error")
	}
}
