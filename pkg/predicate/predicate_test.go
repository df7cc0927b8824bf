package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmatchd/matchd/pkg/predicate"
)

func TestEqualTo(t *testing.T) {
	p := predicate.EqualTo("news")

	assert.True(t, p.Test("news"))
	assert.False(t, p.Test("fake"))
	assert.Equal(t, "= news", predicate.Describe(p))
}

func TestEqualTo_DeepEquality(t *testing.T) {
	type user struct {
		Name  string
		Roles []string
	}
	p := predicate.EqualTo(user{Name: "a", Roles: []string{"admin"}})

	assert.True(t, p.Test(user{Name: "a", Roles: []string{"admin"}}))
	assert.False(t, p.Test(user{Name: "a", Roles: []string{"guest"}}))
}

func TestSatisfying(t *testing.T) {
	p := predicate.Satisfying("even", func(n int) bool { return n%2 == 0 })

	assert.True(t, p.Test(4))
	assert.False(t, p.Test(3))
	assert.Equal(t, "even", predicate.Describe(p))
}

func TestSatisfying_NilFuncPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, predicate.ErrInvalidConfig)
	}()
	predicate.Satisfying[int]("broken", nil)
}

func TestDescribe_Fallback(t *testing.T) {
	assert.Equal(t, "42", predicate.Describe(42))
}

func TestEqual_DefaultEquator(t *testing.T) {
	assert.True(t, predicate.Equal([]int{1, 2}, []int{1, 2}))
	assert.False(t, predicate.Equal([]int{1, 2}, []int{2, 1}))
}
