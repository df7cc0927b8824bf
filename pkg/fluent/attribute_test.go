package fluent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmatchd/matchd/pkg/fluent"
	"github.com/getmatchd/matchd/pkg/predicate"
)

type user struct {
	Name string
	Age  int
}

var (
	name = fluent.Attr("name", func(u user) string { return u.Name })
	age  = fluent.Attr("age", func(u user) int { return u.Age })
)

func TestObjectMatcher(t *testing.T) {
	m := fluent.AnObjectOf[user]().With(
		fluent.HasValue(name, "Alice"),
		fluent.MatchingValue(age, predicate.Satisfying("adult", func(n int) bool { return n >= 18 })),
	)

	assert.True(t, m.Test(user{Name: "Alice", Age: 30}))
	assert.False(t, m.Test(user{Name: "Alice", Age: 12}))
	assert.False(t, m.Test(user{Name: "Bob", Age: 30}))
}

func TestObjectMatcher_PartialScore(t *testing.T) {
	m := fluent.AnObjectOf[user]().With(
		fluent.HasValue(name, "Alice"),
		fluent.HasValue(age, 30),
	)

	assert.Equal(t, 1.0, m.PartialScore(user{Name: "Alice", Age: 30}))
	assert.Equal(t, 0.5, m.PartialScore(user{Name: "Alice", Age: 31}))
	assert.Equal(t, 0.0, m.PartialScore(user{Name: "Bob", Age: 31}))
}

func TestObjectMatcher_NoChecksScoresOne(t *testing.T) {
	m := fluent.AnObjectOf[user]()
	assert.True(t, m.Test(user{}))
	assert.Equal(t, 1.0, m.PartialScore(user{}))
}

func TestObjectMatcher_Mismatches(t *testing.T) {
	m := fluent.AnObjectOf[user]().With(
		fluent.HasValue(name, "Alice"),
		fluent.HasValue(age, 30),
	)

	mismatches := m.Mismatches(user{Name: "Bob", Age: 30})
	require.Len(t, mismatches, 1)
	assert.Equal(t, "name = Alice, was Bob", mismatches[0])
}

func TestObjectMatcher_Description(t *testing.T) {
	m := fluent.AnObjectOf[user]().With(fluent.HasValue(name, "Alice"))
	assert.Contains(t, m.Description(), "name = Alice")
}

func TestObjectMatcher_NestedInSequence(t *testing.T) {
	// An attribute matcher as item expectation: its fractional score ranks
	// near misses in the sequence diagnostics.
	alice := fluent.AnObjectOf[user]().With(
		fluent.HasValue(name, "Alice"),
		fluent.HasValue(age, 30),
	)
	m := fluent.ASequenceOf[user]().WithItemsMatching(alice)

	assert.True(t, m.Matches([]user{{Name: "Alice", Age: 30}}))

	assert.False(t, m.Matches([]user{{Name: "Alice", Age: 31}}))
	results := m.ItemResults()
	require.Len(t, results, 1)
	require.Len(t, results[0].Candidates, 1)
	assert.Equal(t, 0.5, results[0].Candidates[0].Score)
}

func TestObjectMatcher_NilPredicatePanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, predicate.ErrInvalidConfig)
	}()
	fluent.MatchingValue[user, int](age, nil)
}

func TestObjectMatcher_Assert(t *testing.T) {
	rec := &recordingTB{TB: t}
	fluent.AnObjectOf[user]().
		With(fluent.HasValue(name, "Alice")).
		Assert(rec, user{Name: "Bob"})
	assert.True(t, rec.failed)
}
