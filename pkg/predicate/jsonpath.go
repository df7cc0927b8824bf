package predicate

import (
	"fmt"
	"reflect"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

type jsonPath struct {
	src  string
	path jp.Expr
	want any
}

// JSONPath expects an item that is (or contains) a JSON document in which
// the given path resolves to want. Items may be decoded JSON values
// (map[string]any etc.), raw []byte, or a string holding JSON. A nil want
// turns the predicate into an existence check.
//
// An unparsable path is a configuration error and panics.
func JSONPath(path string, want any) Predicate[any] {
	x, err := jp.ParseString(path)
	if err != nil {
		panic(fmt.Errorf("%w: parsing JSONPath %q: %v", ErrInvalidConfig, path, err))
	}
	return jsonPath{src: path, path: x, want: want}
}

func (j jsonPath) Test(item any) bool {
	data, ok := decodeJSON(item)
	if !ok {
		return false
	}
	results := j.path.Get(data)
	if len(results) == 0 {
		return false
	}
	if j.want == nil {
		return true
	}
	for _, r := range results {
		if jsonValuesEqual(r, j.want) {
			return true
		}
	}
	return false
}

func (j jsonPath) Description() string {
	if j.want == nil {
		return fmt.Sprintf("has %s", j.src)
	}
	return fmt.Sprintf("%s = %v", j.src, j.want)
}

func decodeJSON(item any) (any, bool) {
	switch v := item.(type) {
	case []byte:
		data, err := oj.Parse(v)
		return data, err == nil
	case string:
		data, err := oj.ParseString(v)
		return data, err == nil
	default:
		return item, true
	}
}

// jsonValuesEqual compares a resolved JSON value against an expected value,
// coercing numeric types: JSON decoding may yield int64 or float64 while
// the expectation is typically an untyped int.
func jsonValuesEqual(actual, expected any) bool {
	if actual == nil || expected == nil {
		return actual == expected
	}
	if reflect.DeepEqual(actual, expected) {
		return true
	}
	an, aok := toFloat64(actual)
	en, eok := toFloat64(expected)
	if aok && eok {
		return an == en
	}
	return false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}
