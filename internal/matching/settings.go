package matching

import (
	"cmp"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/getmatchd/matchd/pkg/predicate"
)

// Settings is the declarative configuration a fluent builder accumulates
// before evaluation. It is treated as immutable once an evaluation starts.
type Settings[T any] struct {
	// TypeName tags the item type for descriptions.
	TypeName string

	// Expectations are the per-item predicates, in declaration order.
	Expectations []predicate.Predicate[T]

	// ExpectedSize is the required sequence length, -1 when unset.
	ExpectedSize int

	// Exhaustive forbids items beyond the declared expectations.
	Exhaustive bool

	// Ordered requires declaration order to match observation order.
	Ordered bool

	// Sorted requires the sequence to be sorted by Compare, or by the
	// item type's natural order when Compare is nil.
	Sorted bool

	// Unique forbids items equal under Equator, or under deep equality
	// when Equator is nil.
	Unique bool

	// Compare orders two items: negative, zero or positive.
	Compare func(a, b T) int

	// Equator decides item equality for uniqueness checks.
	Equator func(a, b T) bool

	// Logger receives debug-level evaluation traces. Nil disables them.
	Logger *slog.Logger
}

// NewSettings returns empty settings for item type T.
func NewSettings[T any]() Settings[T] {
	return Settings[T]{
		TypeName:     reflect.TypeOf((*T)(nil)).Elem().String(),
		ExpectedSize: -1,
	}
}

// Validate checks the cross-field invariants. A violation is caller
// misuse and aborts evaluation before any matching work.
func (s *Settings[T]) Validate() error {
	if s.ExpectedSize >= 0 && s.ExpectedSize < len(s.Expectations) {
		return fmt.Errorf("%w: expected size %d is less than the %d declared item expectations",
			predicate.ErrInvalidConfig, s.ExpectedSize, len(s.Expectations))
	}
	if s.Exhaustive && s.ExpectedSize >= 0 && s.ExpectedSize != len(s.Expectations) {
		return fmt.Errorf("%w: expected size %d must equal the %d declared item expectations when matching exhaustively",
			predicate.ErrInvalidConfig, s.ExpectedSize, len(s.Expectations))
	}
	if s.Sorted && s.Compare == nil {
		if _, err := NaturalCompare[T](); err != nil {
			return err
		}
	}
	return nil
}

// compareFunc resolves the effective ordering. Validate has already
// guaranteed a natural order exists when Compare is nil.
func (s *Settings[T]) compareFunc() func(a, b T) int {
	if s.Compare != nil {
		return s.Compare
	}
	natural, err := NaturalCompare[T]()
	if err != nil {
		panic(fmt.Errorf("%w: %v", predicate.ErrInternal, err))
	}
	return natural
}

// equatorFunc resolves the effective equality for uniqueness checks.
func (s *Settings[T]) equatorFunc() func(a, b T) bool {
	if s.Equator != nil {
		return s.Equator
	}
	return predicate.Equal[T]
}

// NaturalCompare returns an ordering for T derived from its underlying
// kind. Types whose kind is not a string, integer or float have no
// natural order and require an explicit comparator.
func NaturalCompare[T any]() (func(a, b T) int, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.String:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, nil
	default:
		return nil, fmt.Errorf("%w: type %s has no natural order, supply a comparator",
			predicate.ErrInvalidConfig, t)
	}
}
