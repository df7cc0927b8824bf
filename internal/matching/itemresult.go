package matching

import (
	"sort"

	"github.com/getmatchd/matchd/pkg/match"
)

// ItemResults projects the evaluation state into one diagnostic record per
// observed item. Results are built once and cached; repeated calls return
// the same slice.
//
// Matched items carry only their structural flags. Unmatched items carry
// the candidate expectations ranked by descending score with a
// deterministic tie-break, except in exhaustive ordered mode where an
// unmatched item is unwanted by position and at most the expectation at
// its own index is attached.
func (ev *Evaluation[T]) ItemResults() []match.ItemResult[T] {
	if ev.itemResults != nil {
		return ev.itemResults
	}
	s := ev.settings
	results := make([]match.ItemResult[T], 0, len(ev.Actual))
	for j, item := range ev.Actual {
		if _, matched := ev.MatchedActual[j]; matched {
			results = append(results, match.ItemResult[T]{
				Value:           item,
				Index:           j,
				Matched:         true,
				BreaksItemOrder: ev.has(ev.Unordered, j),
				BreaksSortOrder: ev.has(ev.Unsorted, j),
				Duplicate:       ev.has(ev.Duplicates, j),
			})
			continue
		}
		if s.Exhaustive && s.Ordered {
			ev.Unwanted[j] = struct{}{}
			var candidates []match.Candidate[T]
			if j < len(s.Expectations) {
				candidates = []match.Candidate[T]{{
					Index:     j,
					Predicate: s.Expectations[j],
					Score:     ev.Matrix[j][j],
				}}
			}
			results = append(results, match.ItemResult[T]{
				Value:           item,
				Index:           j,
				Candidates:      candidates,
				BreaksItemOrder: true,
				BreaksSortOrder: ev.has(ev.Unsorted, j),
				Duplicate:       ev.has(ev.Duplicates, j),
				Unwanted:        true,
			})
			continue
		}
		if s.Exhaustive {
			ev.Unwanted[j] = struct{}{}
		}
		results = append(results, match.ItemResult[T]{
			Value:           item,
			Index:           j,
			Candidates:      ev.rankCandidates(j),
			BreaksItemOrder: ev.has(ev.Unordered, j),
			BreaksSortOrder: ev.has(ev.Unsorted, j),
			Duplicate:       ev.has(ev.Duplicates, j),
			Unwanted:        ev.has(ev.Unwanted, j),
		})
	}
	ev.itemResults = results
	return results
}

// rankCandidates collects every expectation that did not exactly match
// item j and ranks them by descending score, tie-broken by the smallest
// distance between item and expectation index, then by expectation index.
// The ordering is total, so diagnostics are stable across runs.
func (ev *Evaluation[T]) rankCandidates(j int) []match.Candidate[T] {
	var candidates []match.Candidate[T]
	for i := range ev.settings.Expectations {
		if score := ev.Matrix[i][j]; score != ExactMatch {
			candidates = append(candidates, match.Candidate[T]{
				Index:     i,
				Predicate: ev.settings.Expectations[i],
				Score:     score,
			})
		}
	}
	sort.Slice(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.Score != cb.Score {
			return ca.Score > cb.Score
		}
		da, db := absDistance(j, ca.Index), absDistance(j, cb.Index)
		if da != db {
			return da < db
		}
		return ca.Index < cb.Index
	})
	return candidates
}

func (ev *Evaluation[T]) has(set map[int]struct{}, j int) bool {
	_, ok := set[j]
	return ok
}

func absDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
