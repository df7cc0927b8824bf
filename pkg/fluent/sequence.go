package fluent

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/getmatchd/matchd/internal/matching"
	"github.com/getmatchd/matchd/internal/prose"
	"github.com/getmatchd/matchd/pkg/match"
	"github.com/getmatchd/matchd/pkg/predicate"
	"github.com/getmatchd/matchd/pkg/symbols"
)

// SequenceMatcher checks multiple characteristics of an observed sequence
// at once: size, sortedness, order, uniqueness, exhaustiveness and
// per-item expectations. Configuration calls chain and accumulate; the
// matcher evaluates on Matches and keeps that evaluation's state for
// Score, Findings, ItemResults and DescribeMismatch.
//
// A SequenceMatcher is itself a predicate with a partial score, so it can
// serve as a nested expectation inside another matcher:
//
//	inner := fluent.ASequenceOf[int]().Ordered().WithItems(1, 2)
//	outer := fluent.ASequenceOf[[]int]().WithItemsMatching(inner)
//
// One instance must not be evaluated from multiple goroutines at the same
// time: the working state is confined to the instance and reset at the
// start of each evaluation. Configuration is cheap; build one matcher per
// goroutine when concurrent checks are needed.
type SequenceMatcher[T any] struct {
	settings matching.Settings[T]
	eval     *matching.Evaluation[T]
	sym      symbols.Set
}

// ASequenceOf creates a matcher for sequences of T with no expectations.
func ASequenceOf[T any]() *SequenceMatcher[T] {
	return &SequenceMatcher[T]{
		settings: matching.NewSettings[T](),
		sym:      symbols.Default(),
	}
}

// OfSize sets the expected number of items. Used together with Exactly,
// the size must equal the number of declared item expectations.
func (m *SequenceMatcher[T]) OfSize(n int) *SequenceMatcher[T] {
	if n < 0 {
		panic(fmt.Errorf("%w: size must not be negative", predicate.ErrInvalidConfig))
	}
	m.settings.ExpectedSize = n
	return m
}

// Sorted expects the sequence to be sorted in the item type's natural
// order. Item types without a natural order (anything that is not a
// string, integer or float kind) must use SortedBy instead.
func (m *SequenceMatcher[T]) Sorted() *SequenceMatcher[T] {
	if _, err := matching.NaturalCompare[T](); err != nil {
		panic(err)
	}
	m.settings.Sorted = true
	return m
}

// SortedBy expects the sequence to be sorted according to compare.
func (m *SequenceMatcher[T]) SortedBy(compare func(a, b T) int) *SequenceMatcher[T] {
	if compare == nil {
		panic(fmt.Errorf("%w: SortedBy requires a non-nil comparator", predicate.ErrInvalidConfig))
	}
	m.settings.Sorted = true
	m.settings.Compare = compare
	return m
}

// Ordered expects items to appear in the order in which expected values
// and item predicates were declared. Without Exactly, unexpected items in
// between are tolerated (subsequence semantics); with Exactly, nothing
// may be skipped.
func (m *SequenceMatcher[T]) Ordered() *SequenceMatcher[T] {
	m.settings.Ordered = true
	return m
}

// WithItemsMatching adds per-item predicates. For each predicate there
// must be at least one exactly matching item.
func (m *SequenceMatcher[T]) WithItemsMatching(ps ...predicate.Predicate[T]) *SequenceMatcher[T] {
	if ps == nil {
		panic(fmt.Errorf("%w: item expectations must not be nil", predicate.ErrInvalidConfig))
	}
	for _, p := range ps {
		if p == nil {
			panic(fmt.Errorf("%w: item expectations must not be nil", predicate.ErrInvalidConfig))
		}
		m.settings.Expectations = append(m.settings.Expectations, p)
	}
	return m
}

// WithItems adds expected values, each wrapped into a deep-equality
// predicate. For each value there must be at least one equal item.
func (m *SequenceMatcher[T]) WithItems(items ...T) *SequenceMatcher[T] {
	for _, item := range items {
		m.settings.Expectations = append(m.settings.Expectations, predicate.EqualTo(item))
	}
	return m
}

// Exactly expects the sequence to contain only items accounted for by the
// declared expectations.
func (m *SequenceMatcher[T]) Exactly() *SequenceMatcher[T] {
	m.settings.Exhaustive = true
	return m
}

// Unique expects items to be pairwise distinct under deep equality.
func (m *SequenceMatcher[T]) Unique() *SequenceMatcher[T] {
	m.settings.Unique = true
	return m
}

// UniqueBy expects items to be pairwise distinct under the given equality.
func (m *SequenceMatcher[T]) UniqueBy(equal func(a, b T) bool) *SequenceMatcher[T] {
	if equal == nil {
		panic(fmt.Errorf("%w: UniqueBy requires a non-nil equality func", predicate.ErrInvalidConfig))
	}
	m.settings.Unique = true
	m.settings.Equator = equal
	return m
}

// WithSymbols selects the symbol set for descriptions. Defaults to
// symbols.Default; pass symbols.ASCII for plain output.
func (m *SequenceMatcher[T]) WithSymbols(sym symbols.Set) *SequenceMatcher[T] {
	m.sym = sym
	return m
}

// WithLogger enables debug-level evaluation traces.
func (m *SequenceMatcher[T]) WithLogger(l *slog.Logger) *SequenceMatcher[T] {
	m.settings.Logger = l
	return m
}

// Matches evaluates the observed sequence and reports the verdict. A nil
// sequence is treated as absent, distinct from an empty one: it fails
// with its own finding and scores zero. Configuration inconsistencies
// (size below the declared expectation count, exhaustive with a
// conflicting size) panic here, before any matching work.
func (m *SequenceMatcher[T]) Matches(actual []T) bool {
	return m.evaluate(actual).Verdict()
}

// Test makes the matcher usable as a predicate over []T items.
func (m *SequenceMatcher[T]) Test(item []T) bool {
	return m.Matches(item)
}

// PartialScore evaluates the item and returns the satisfaction score,
// making the matcher a composable scoring predicate.
func (m *SequenceMatcher[T]) PartialScore(item []T) float64 {
	return m.evaluate(item).Score()
}

// Score reports the satisfaction score of the last evaluation: 1.0 for a
// clean pass, 0.0 for an absent sequence, a fraction of met expectations
// otherwise. Zero when nothing has been evaluated yet.
func (m *SequenceMatcher[T]) Score() float64 {
	if m.eval == nil {
		return 0.0
	}
	return m.eval.Score()
}

// Findings returns the named problems of the last evaluation.
func (m *SequenceMatcher[T]) Findings() []match.Finding {
	if m.eval == nil {
		return nil
	}
	return append([]match.Finding(nil), m.eval.Findings...)
}

// ItemResults returns the per-item diagnostic records of the last
// evaluation.
func (m *SequenceMatcher[T]) ItemResults() []match.ItemResult[T] {
	if m.eval == nil {
		return nil
	}
	return m.eval.ItemResults()
}

// DescribeExpectations writes a human-readable rendering of the
// configured expectations.
func (m *SequenceMatcher[T]) DescribeExpectations(w io.Writer) {
	prose.Expectations(w, &m.settings, m.sym)
}

// DescribeMismatch evaluates the sequence and writes the findings plus a
// line-per-item diagnostic table.
func (m *SequenceMatcher[T]) DescribeMismatch(w io.Writer, actual []T) {
	ev := m.evaluate(actual)
	prose.Mismatch(w, ev, m.sym)
}

// Description identifies the matcher when it appears as a candidate in
// another matcher's diagnostics.
func (m *SequenceMatcher[T]) Description() string {
	var b strings.Builder
	prose.Expectations(&b, &m.settings, m.sym)
	return strings.TrimSuffix(strings.ReplaceAll(b.String(), "\n", " "), " ")
}

// Assert evaluates the sequence and fails the test with the full
// expectation description and mismatch table if it does not match.
func (m *SequenceMatcher[T]) Assert(t testing.TB, actual []T) {
	t.Helper()
	if m.Matches(actual) {
		return
	}
	var b strings.Builder
	b.WriteString("sequence did not meet expectations\nExpected: ")
	m.DescribeExpectations(&b)
	prose.Mismatch(&b, m.eval, m.sym)
	t.Error(b.String())
}

func (m *SequenceMatcher[T]) evaluate(actual []T) *matching.Evaluation[T] {
	ev, err := matching.Evaluate(&m.settings, actual, actual != nil)
	if err != nil {
		panic(err)
	}
	m.eval = ev
	return ev
}
