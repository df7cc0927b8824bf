// Package predicate defines the capability interface for per-item
// expectations and a set of ready-made predicate constructors.
//
// A Predicate answers yes or no for a single item. Two optional
// capabilities refine diagnostics:
//
//   - Scorer: a composable matcher that reports a continuous satisfaction
//     degree in [0,1] for items it does not fully match. Nested sequence
//     and attribute matchers implement it, which is what makes recursive
//     fuzzy matching work: a nested matcher's fractional score propagates
//     into the parent's match matrix.
//   - Describer: a short human-readable rendering for mismatch tables.
//
// Constructors:
//
//   - EqualTo: go-cmp deep equality against an expected value
//   - Satisfying: wraps a plain func with a description
//   - Expr: compiles an expr-lang expression over the variable "item"
//   - JSONPath: resolves a JSONPath in a JSON-valued item
//
// Misconfigured predicates (nil funcs, uncompilable expressions) panic
// with an error wrapping ErrInvalidConfig.
package predicate
