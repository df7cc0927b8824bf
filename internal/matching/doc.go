// Package matching implements the sequence matching engine.
//
// An evaluation takes a validated Settings (the declared expectations and
// structural flags) plus an observed sequence and runs four stages:
//
//   - matrix build: every expectation is tested against every item,
//     producing a score matrix in [0,1] where 1.0 is an exact match and
//     fractional cells come from composable predicates that report
//     partial satisfaction
//   - aggregation: exact-match cells are projected onto matched
//     expectation and matched item index sets
//   - assessment: a fixed sequence of checks (size, completeness,
//     exhaustiveness, matchability, order, sortedness, uniqueness) that
//     accumulates deduplicated findings; an empty finding set is a pass
//   - projection: on demand, per-item diagnostic records with candidate
//     expectations ranked by score for each unmatched item
//
// The engine also derives a fractional satisfaction score from the same
// state, which is what lets one matcher nest inside another as a scoring
// predicate.
//
// No bipartite optimality is attempted: "matched" records the existence
// of at least one exact pairing, which keeps the algorithms deterministic
// and O(expectations x items) at test-data scale.
package matching
