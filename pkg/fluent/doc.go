// Package fluent is the public construction surface of matchd: fluent
// matchers for sequences and for single objects.
//
// # Sequence matching
//
//	m := fluent.ASequenceOf[string]().
//		Exactly().
//		Sorted().
//		Ordered().
//		Unique().
//		WithItemsMatching(
//			predicate.Expr[string](`item startsWith "Ron"`),
//			predicate.Expr[string](`item endsWith "ment"`),
//		).
//		WithItems("true", "news", "impeachment")
//
//	if !m.Matches(strings) {
//		var b strings.Builder
//		m.DescribeMismatch(&b, strings)
//		t.Error(b.String())
//	}
//
// Or, equivalently, m.Assert(t, strings).
//
// # Object matching
//
//	name := fluent.Attr("name", func(u User) string { return u.Name })
//	m := fluent.AnObjectOf[User]().With(fluent.HasValue(name, "Alice"))
//
// # Composition
//
// Both matcher kinds implement predicate.Predicate and predicate.Scorer,
// so they nest: a sequence matcher over []int can appear as an item
// expectation of a matcher over [][]int, and its fractional score ranks
// it among the candidate expectations of near-miss items.
//
// # Errors
//
// Configuration misuse (negative sizes, nil predicates, natural-order
// sorting of unordered types, a declared size inconsistent with Exactly)
// panics with an error wrapping predicate.ErrInvalidConfig. Match
// problems never panic; they surface as findings and diagnostics.
package fluent
