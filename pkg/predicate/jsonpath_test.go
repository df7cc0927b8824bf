package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmatchd/matchd/pkg/predicate"
)

func TestJSONPath_DecodedValue(t *testing.T) {
	p := predicate.JSONPath("$.user.name", "alice")
	item := map[string]any{
		"user": map[string]any{"name": "alice"},
	}

	assert.True(t, p.Test(item))
	assert.False(t, p.Test(map[string]any{"user": map[string]any{"name": "bob"}}))
}

func TestJSONPath_RawDocuments(t *testing.T) {
	p := predicate.JSONPath("$.id", 42)

	assert.True(t, p.Test(`{"id": 42}`))
	assert.True(t, p.Test([]byte(`{"id": 42}`)))
	assert.False(t, p.Test(`{"id": 7}`))
	assert.False(t, p.Test(`not json`))
}

func TestJSONPath_NumericCoercion(t *testing.T) {
	// JSON decoding may yield float64 where the expectation is an int.
	p := predicate.JSONPath("$.n", 3)
	assert.True(t, p.Test(map[string]any{"n": 3.0}))
}

func TestJSONPath_ExistenceCheck(t *testing.T) {
	p := predicate.JSONPath("$.meta", nil)

	assert.True(t, p.Test(`{"meta": {"k": 1}}`))
	assert.False(t, p.Test(`{"other": 1}`))
	assert.Equal(t, "has $.meta", predicate.Describe(p))
}

func TestJSONPath_InvalidPathPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, predicate.ErrInvalidConfig)
	}()
	predicate.JSONPath("$[", nil)
}

func TestJSONPath_Description(t *testing.T) {
	p := predicate.JSONPath("$.id", 42)
	assert.Equal(t, "$.id = 42", predicate.Describe(p))
}
