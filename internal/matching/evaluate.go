package matching

import (
	"slices"

	"github.com/getmatchd/matchd/pkg/match"
	"github.com/getmatchd/matchd/pkg/predicate"
)

// ExactMatch is the matrix score denoting full satisfaction of an
// expectation by an item. Aggregation treats only exact cells as matches;
// fractional cells feed diagnostics and nested scoring.
const ExactMatch = 1.0

// Evaluation is the working state of a single evaluation: the observed
// snapshot, the score matrix, the aggregated index sets and the findings.
// It belongs to one matcher instance and must not be read concurrently
// with another evaluation of the same instance.
type Evaluation[T any] struct {
	settings *Settings[T]

	// Actual is the materialized snapshot of the observed sequence.
	Actual []T

	// Present is false when the observed sequence was absent (nil input
	// through the pointer-aware entry), which short-circuits everything.
	Present bool

	// Matrix holds one row per expectation and one column per item.
	Matrix [][]float64

	// MatchedExpected and MatchedActual are the projections of exact
	// matrix cells onto rows and columns.
	MatchedExpected map[int]struct{}
	MatchedActual   map[int]struct{}

	// Per-item index sets populated by assessment and projection.
	Unordered  map[int]struct{}
	Unsorted   map[int]struct{}
	Duplicates map[int]struct{}
	Unwanted   map[int]struct{}

	// Findings are the named problems, deduplicated, insertion-ordered.
	Findings []match.Finding

	itemResults []match.ItemResult[T]
}

// Evaluate runs a full evaluation of the observed sequence against the
// settings. present=false marks the absent-sequence case. The returned
// error is always a configuration error; match problems are findings.
func Evaluate[T any](s *Settings[T], actual []T, present bool) (*Evaluation[T], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ev := &Evaluation[T]{
		settings:        s,
		Present:         present,
		MatchedExpected: map[int]struct{}{},
		MatchedActual:   map[int]struct{}{},
		Unordered:       map[int]struct{}{},
		Unsorted:        map[int]struct{}{},
		Duplicates:      map[int]struct{}{},
		Unwanted:        map[int]struct{}{},
	}
	if !present {
		ev.addFinding(FindingNilSequence)
		return ev, nil
	}

	ev.Actual = slices.Clone(actual)
	ev.buildMatrix()
	ev.aggregate()
	ev.assess()

	if s.Logger != nil {
		s.Logger.Debug("sequence evaluated",
			"type", s.TypeName,
			"items", len(ev.Actual),
			"expectations", len(s.Expectations),
			"matched", len(ev.MatchedExpected),
			"findings", len(ev.Findings))
	}
	return ev, nil
}

// Verdict reports whether the sequence met every expectation.
func (ev *Evaluation[T]) Verdict() bool {
	return len(ev.Findings) == 0
}

// addFinding appends a finding unless one with the same description exists.
func (ev *Evaluation[T]) addFinding(description string) {
	for _, f := range ev.Findings {
		if f.Description == description {
			return
		}
	}
	ev.Findings = append(ev.Findings, match.Finding{Description: description})
}

// buildMatrix scores every (expectation, item) pair. An exact match scores
// ExactMatch; otherwise a composable predicate contributes its partial
// score and anything else scores zero.
func (ev *Evaluation[T]) buildMatrix() {
	expectations := ev.settings.Expectations
	ev.Matrix = make([][]float64, len(expectations))
	for i, exp := range expectations {
		row := make([]float64, len(ev.Actual))
		for j, item := range ev.Actual {
			if exp.Test(item) {
				row[j] = ExactMatch
			} else if scorer, ok := exp.(predicate.Scorer[T]); ok {
				row[j] = scorer.PartialScore(item)
			}
		}
		ev.Matrix[i] = row
	}
}

// aggregate projects exact cells onto the matched index sets. An
// expectation may match several items and vice versa; aggregation only
// records that at least one exact pairing exists.
func (ev *Evaluation[T]) aggregate() {
	for i, row := range ev.Matrix {
		for j, score := range row {
			if score == ExactMatch {
				ev.MatchedExpected[i] = struct{}{}
				ev.MatchedActual[j] = struct{}{}
			}
		}
	}
}

// assess runs the fixed check sequence. Each check contributes at most one
// finding; the sortedness and uniqueness checks may additionally mark
// several offending indices.
func (ev *Evaluation[T]) assess() {
	s := ev.settings

	if s.ExpectedSize >= 0 && s.ExpectedSize != len(ev.Actual) {
		ev.addFinding(sizeMismatchFinding(s.ExpectedSize, len(ev.Actual)))
	}
	if len(ev.MatchedExpected) < len(s.Expectations) {
		ev.addFinding(FindingIncomplete)
	}
	if s.Exhaustive && len(ev.Actual) > len(s.Expectations) {
		ev.addFinding(FindingUnexpectedItems)
	}
	if len(ev.MatchedExpected) > len(ev.MatchedActual) {
		ev.addFinding(FindingUnmatchable)
	}
	if s.Ordered {
		ev.assessOrder()
	}
	if s.Sorted && len(ev.Actual) > 1 {
		ev.assessSortOrder()
	}
	if s.Unique && len(ev.Actual) > 1 {
		ev.assessUniqueness()
	}
}

// assessOrder walks expectations and items in lockstep. In non-exhaustive
// mode a mismatched item is skipped and the same expectation retried
// against the next item, so ordering behaves as a subsequence search. In
// exhaustive mode nothing may be skipped: the item is marked and the walk
// advances on both sides.
func (ev *Evaluation[T]) assessOrder() {
	s := ev.settings
	matchedInOrder := 0
	for i, j := 0, 0; i < len(s.Expectations) && j < len(ev.Actual); i, j = i+1, j+1 {
		switch {
		case ev.Matrix[i][j] == ExactMatch:
			matchedInOrder++
		case !s.Exhaustive:
			ev.Unordered[j] = struct{}{}
			i--
		default:
			ev.Unordered[j] = struct{}{}
		}
	}
	if matchedInOrder < len(s.Expectations) {
		ev.addFinding(FindingOutOfOrder)
	}
}

// assessSortOrder compares adjacent pairs and marks the right-hand index
// of every inverted pair.
func (ev *Evaluation[T]) assessSortOrder() {
	compare := ev.settings.compareFunc()
	for k, l := 0, 1; l < len(ev.Actual); k, l = k+1, l+1 {
		if compare(ev.Actual[k], ev.Actual[l]) > 0 {
			ev.Unsorted[l] = struct{}{}
			ev.addFinding(FindingUnsorted)
		}
	}
}

// assessUniqueness tests every unordered index pair and marks both sides
// of each duplicate.
func (ev *Evaluation[T]) assessUniqueness() {
	equal := ev.settings.equatorFunc()
	for k := 0; k < len(ev.Actual); k++ {
		for l := k + 1; l < len(ev.Actual); l++ {
			if equal(ev.Actual[k], ev.Actual[l]) {
				ev.Duplicates[k] = struct{}{}
				ev.Duplicates[l] = struct{}{}
			}
		}
	}
	if len(ev.Duplicates) > 0 {
		ev.addFinding(FindingDuplicates)
	}
}

// hasFinding reports whether a finding with the given description was
// recorded.
func (ev *Evaluation[T]) hasFinding(description string) bool {
	for _, f := range ev.Findings {
		if f.Description == description {
			return true
		}
	}
	return false
}
