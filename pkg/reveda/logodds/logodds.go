package logodds

import (
	"math"
	"sort"
)

// DefaultAlpha is the additive smoothing constant. With alpha > 0 the
// score stays finite for terms with zero raw count in one class.
const DefaultAlpha = 0.5

// Scorer computes smoothed log-odds association scores between the
// positive and negative review classes
type Scorer struct {
	alpha float64
}

// NewScorer creates a scorer with the given smoothing constant.
// Non-positive values fall back to DefaultAlpha.
func NewScorer(alpha float64) *Scorer {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return &Scorer{alpha: alpha}
}

// Alpha returns the smoothing constant in use
func (s *Scorer) Alpha() float64 {
	return s.alpha
}

// Score calculates the log-odds association of a term with the positive
// class versus the negative class
//
//	score = ln((posCount+α) / (posTotal−posCount+α))
//	      − ln((negCount+α) / (negTotal−negCount+α))
//
// posTotal and negTotal are total token occurrences per class. Positive
// scores associate with the positive class, negative with the negative
// class; magnitude indicates strength.
func (s *Scorer) Score(posCount, negCount, posTotal, negTotal int64) float64 {
	p := (float64(posCount) + s.alpha) / (float64(posTotal-posCount) + s.alpha)
	n := (float64(negCount) + s.alpha) / (float64(negTotal-negCount) + s.alpha)
	return math.Log(p) - math.Log(n)
}

// Association is one scored vocabulary term
type Association struct {
	Term     string
	LogOdds  float64
	PosCount int64
	NegCount int64
}

// Rank scores every term in the union vocabulary of both frequency tables
// and returns the k most positively and k most negatively associated terms.
// The positive list is sorted descending by score, the negative list
// ascending; ties break by term ascending for reproducibility.
func (s *Scorer) Rank(pos, neg map[string]int64, k int) (mostPositive, mostNegative []Association) {
	posTotal := sumCounts(pos)
	negTotal := sumCounts(neg)

	vocab := make(map[string]struct{}, len(pos)+len(neg))
	for term := range pos {
		vocab[term] = struct{}{}
	}
	for term := range neg {
		vocab[term] = struct{}{}
	}

	scored := make([]Association, 0, len(vocab))
	for term := range vocab {
		pc, nc := pos[term], neg[term]
		scored = append(scored, Association{
			Term:     term,
			LogOdds:  s.Score(pc, nc, posTotal, negTotal),
			PosCount: pc,
			NegCount: nc,
		})
	}

	if k <= 0 || k > len(scored) {
		k = len(scored)
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].LogOdds == scored[j].LogOdds {
			return scored[i].Term < scored[j].Term
		}
		return scored[i].LogOdds > scored[j].LogOdds
	})
	mostPositive = make([]Association, k)
	copy(mostPositive, scored[:k])

	// The negative list gets its own sort so equal scores still come out
	// term ascending.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].LogOdds == scored[j].LogOdds {
			return scored[i].Term < scored[j].Term
		}
		return scored[i].LogOdds < scored[j].LogOdds
	})
	mostNegative = make([]Association, k)
	copy(mostNegative, scored[:k])

	return mostPositive, mostNegative
}

func sumCounts(table map[string]int64) int64 {
	var total int64
	for _, c := range table {
		total += c
	}
	return total
}
