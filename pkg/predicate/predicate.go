package predicate

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// ErrInvalidConfig marks matcher misconfiguration: nil arguments, negative
// sizes, uncompilable expressions and the like. Configuration errors are
// raised via panic at the offending call so a broken test setup aborts
// loudly instead of producing a bogus verdict.
var ErrInvalidConfig = errors.New("invalid matcher configuration")

// ErrInternal marks a violated internal consistency invariant. It signals a
// bug in the engine itself, never caller misuse, and should be unreachable.
var ErrInternal = errors.New("internal matcher error")

// Predicate is a yes/no expectation about a single item.
type Predicate[T any] interface {
	// Test reports whether the item satisfies the expectation.
	Test(item T) bool
}

// Scorer is an optional capability of a Predicate: a composable matcher
// that can quantify partial satisfaction of an item it does not fully
// match. Scores are in [0,1]; 1.0 means full satisfaction.
type Scorer[T any] interface {
	// PartialScore returns the degree to which item satisfies the
	// expectation.
	PartialScore(item T) float64
}

// Describer is an optional capability of a Predicate: a short human-readable
// rendering of the expectation for diagnostic output.
type Describer interface {
	Description() string
}

// Describe returns the predicate's self-description if it has one, falling
// back to its fmt rendering.
func Describe(p any) string {
	if d, ok := p.(Describer); ok {
		return d.Description()
	}
	return fmt.Sprintf("%v", p)
}

// Equal is the default equality used for expected values and uniqueness
// checks: go-cmp deep equality.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b)
}

type equalTo[T any] struct {
	want T
	opts []cmp.Option
}

// EqualTo expects an item deeply equal to want. Additional go-cmp options
// may be supplied for types that need them (unexported fields, tolerances).
func EqualTo[T any](want T, opts ...cmp.Option) Predicate[T] {
	return equalTo[T]{want: want, opts: opts}
}

func (e equalTo[T]) Test(item T) bool {
	return cmp.Equal(e.want, item, e.opts...)
}

func (e equalTo[T]) Description() string {
	return fmt.Sprintf("= %v", e.want)
}

type satisfying[T any] struct {
	desc string
	test func(T) bool
}

// Satisfying wraps a plain predicate function. The description is used in
// diagnostic output.
func Satisfying[T any](desc string, test func(T) bool) Predicate[T] {
	if test == nil {
		panic(fmt.Errorf("%w: Satisfying requires a non-nil test func", ErrInvalidConfig))
	}
	return satisfying[T]{desc: desc, test: test}
}

func (s satisfying[T]) Test(item T) bool {
	return s.test(item)
}

func (s satisfying[T]) Description() string {
	return s.desc
}
