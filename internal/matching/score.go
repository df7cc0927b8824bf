package matching

import (
	"fmt"

	"github.com/getmatchd/matchd/pkg/predicate"
)

// Score measures the extent to which the observed sequence met the
// expectations, for use in recursive composition.
//
// The denominator counts every active general expectation (size,
// exhaustiveness, order, sortedness, uniqueness, having any item
// expectations at all) plus the always-active "sequence is present"
// expectation, plus one per declared item expectation. The numerator
// counts the general expectations that produced no finding plus the
// matched item expectations.
//
// A missing sequence scores 0 unconditionally; a clean evaluation scores 1.
func (ev *Evaluation[T]) Score() float64 {
	if len(ev.Findings) == 0 {
		return 1.0
	}
	if ev.hasFinding(FindingNilSequence) {
		return 0.0
	}
	s := ev.settings
	general := 1 // sequence is present
	for _, active := range []bool{
		s.ExpectedSize >= 0,
		s.Exhaustive,
		s.Ordered,
		s.Sorted,
		s.Unique,
		len(s.Expectations) > 0,
	} {
		if active {
			general++
		}
	}
	allExpectations := general + len(s.Expectations)
	generalMatched := general - len(ev.Findings)
	if generalMatched < 0 {
		panic(fmt.Errorf("%w: more findings (%d) than general expectations (%d)",
			predicate.ErrInternal, len(ev.Findings), general))
	}
	allMatched := generalMatched + len(ev.MatchedExpected)
	if allMatched > allExpectations {
		panic(fmt.Errorf("%w: more matched expectations (%d) than expectations (%d)",
			predicate.ErrInternal, allMatched, allExpectations))
	}
	return float64(allMatched) / float64(allExpectations)
}
