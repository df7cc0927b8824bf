package fluent

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/getmatchd/matchd/pkg/predicate"
)

// Attribute names a readable property of T for attribute matching.
type Attribute[T, A any] struct {
	// Name labels the attribute in diagnostics.
	Name string

	// Get extracts the attribute value.
	Get func(T) A
}

// Attr creates an attribute from a name and a getter.
func Attr[T, A any](name string, get func(T) A) Attribute[T, A] {
	if get == nil {
		panic(fmt.Errorf("%w: attribute %q requires a non-nil getter", predicate.ErrInvalidConfig, name))
	}
	return Attribute[T, A]{Name: name, Get: get}
}

// Check is one attribute expectation of an ObjectMatcher. Build checks
// with HasValue or MatchingValue.
type Check[T any] struct {
	name     string
	expected string
	test     func(T) bool
	actual   func(T) string
}

// HasValue expects the attribute to equal want under deep equality.
func HasValue[T, A any](attr Attribute[T, A], want A) Check[T] {
	return Check[T]{
		name:     attr.Name,
		expected: fmt.Sprintf("= %v", want),
		test:     func(x T) bool { return predicate.Equal(attr.Get(x), want) },
		actual:   func(x T) string { return fmt.Sprintf("%v", attr.Get(x)) },
	}
}

// MatchingValue expects the attribute to satisfy the given predicate.
func MatchingValue[T, A any](attr Attribute[T, A], p predicate.Predicate[A]) Check[T] {
	if p == nil {
		panic(fmt.Errorf("%w: attribute %q requires a non-nil predicate", predicate.ErrInvalidConfig, attr.Name))
	}
	return Check[T]{
		name:     attr.Name,
		expected: predicate.Describe(p),
		test:     func(x T) bool { return p.Test(attr.Get(x)) },
		actual:   func(x T) string { return fmt.Sprintf("%v", attr.Get(x)) },
	}
}

// ObjectMatcher checks several attributes of a single value at once. Like
// SequenceMatcher it is a composable scoring predicate: its partial score
// is the fraction of satisfied attribute checks, which makes it useful as
// a nested item expectation.
type ObjectMatcher[T any] struct {
	typeName string
	checks   []Check[T]
}

// AnObjectOf creates an attribute matcher for T with no checks.
func AnObjectOf[T any]() *ObjectMatcher[T] {
	return &ObjectMatcher[T]{typeName: reflect.TypeOf((*T)(nil)).Elem().String()}
}

// With adds attribute checks. All checks must pass for the matcher to
// match.
func (m *ObjectMatcher[T]) With(checks ...Check[T]) *ObjectMatcher[T] {
	for _, c := range checks {
		if c.test == nil {
			panic(fmt.Errorf("%w: attribute checks must be built with HasValue or MatchingValue", predicate.ErrInvalidConfig))
		}
		m.checks = append(m.checks, c)
	}
	return m
}

// Test reports whether every attribute check passes.
func (m *ObjectMatcher[T]) Test(item T) bool {
	for _, c := range m.checks {
		if !c.test(item) {
			return false
		}
	}
	return true
}

// PartialScore returns the fraction of attribute checks the item
// satisfies. A matcher without checks scores 1.0.
func (m *ObjectMatcher[T]) PartialScore(item T) float64 {
	if len(m.checks) == 0 {
		return 1.0
	}
	passed := 0
	for _, c := range m.checks {
		if c.test(item) {
			passed++
		}
	}
	return float64(passed) / float64(len(m.checks))
}

// Mismatches describes each failing attribute check for the item.
func (m *ObjectMatcher[T]) Mismatches(item T) []string {
	var out []string
	for _, c := range m.checks {
		if !c.test(item) {
			out = append(out, fmt.Sprintf("%s %s, was %s", c.name, c.expected, c.actual(item)))
		}
	}
	return out
}

// Description identifies the matcher in another matcher's diagnostics.
func (m *ObjectMatcher[T]) Description() string {
	if len(m.checks) == 0 {
		return fmt.Sprintf("a %s", m.typeName)
	}
	descs := make([]string, len(m.checks))
	for i, c := range m.checks {
		descs[i] = c.name + " " + c.expected
	}
	return fmt.Sprintf("a %s with %s", m.typeName, strings.Join(descs, "; "))
}

// Assert fails the test with per-attribute mismatches if the item does
// not match.
func (m *ObjectMatcher[T]) Assert(t testing.TB, item T) {
	t.Helper()
	mismatches := m.Mismatches(item)
	if len(mismatches) == 0 {
		return
	}
	t.Errorf("object did not meet expectations:\n%s", strings.Join(mismatches, "\n"))
}
