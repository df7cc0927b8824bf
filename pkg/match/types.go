package match

import "github.com/getmatchd/matchd/pkg/predicate"

// Finding is one named problem discovered during assessment. Findings are
// deduplicated by description: repeated reports of the same condition
// collapse to a single entry, in first-insertion order.
type Finding struct {
	Description string
}

// Candidate pairs an unmatched expectation with the score it achieved
// against a particular item.
type Candidate[T any] struct {
	// Index is the expectation's position in the declared expectation list.
	Index int

	// Predicate is the expectation itself.
	Predicate predicate.Predicate[T]

	// Score is the match matrix cell for this (expectation, item) pair,
	// in [0,1) — an exact match would not be a candidate.
	Score float64
}

// ItemResult is the per-item diagnostic record: the observed value, whether
// any expectation matched it exactly, the ranked candidate expectations if
// not, and the structural flags assessed for its index.
type ItemResult[T any] struct {
	// Value is the observed item.
	Value T

	// Index is the item's position in the observed sequence.
	Index int

	// Matched reports whether at least one expectation matched exactly.
	Matched bool

	// Candidates ranks the closest non-matching expectations by descending
	// score. Empty for matched items. For items known unwanted by position
	// (exhaustive ordered mode) it holds at most the positional expectation.
	Candidates []Candidate[T]

	// BreaksItemOrder is set when the item interrupts the declared
	// expectation order.
	BreaksItemOrder bool

	// BreaksSortOrder is set when the item is out of sort order relative
	// to its predecessor.
	BreaksSortOrder bool

	// Duplicate is set when the item equals another item under the
	// configured equality.
	Duplicate bool

	// Unwanted is set when exhaustive matching leaves no expectation that
	// could account for the item.
	Unwanted bool
}
