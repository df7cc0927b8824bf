// Package symbols configures the glyphs used when rendering expectation
// descriptions and mismatch tables. Two built-in sets exist: a decorated
// Unicode set and a plain ASCII fallback for terminals and log sinks that
// cannot display the former. The rendering layer takes the set as an
// argument; nothing in the engine reads ambient state to pick one.
package symbols

// Set holds every symbol the rendering layer needs. Start from Default or
// ASCII and override individual fields as needed.
type Set struct {
	// ExpectedEquals separates an attribute name from its expected value.
	ExpectedEquals string

	// ActualNotEquals separates an expected value from a differing actual.
	ActualNotEquals string

	// ExpectedMatches separates an attribute from a predicate description.
	ExpectedMatches string

	// PointingNested introduces a nested matcher's own description.
	PointingNested string

	// ItemMatches flags an item that satisfied at least one expectation.
	ItemMatches string

	// ItemNotMatches flags an item no expectation matched.
	ItemNotMatches string

	// ItemBadItemOrder flags an item that breaks the declared order.
	ItemBadItemOrder string

	// ItemBadSortOrder flags an item that breaks the sort order.
	ItemBadSortOrder string

	// ItemDuplicate flags a duplicated item.
	ItemDuplicate string

	// ItemUnwanted flags an item no expectation accounts for.
	ItemUnwanted string

	// LeftBracket and RightBracket enclose values and indices.
	LeftBracket  string
	RightBracket string
}

// Default returns the decorated Unicode symbol set.
func Default() Set {
	return Set{
		ExpectedEquals:   " = ",
		ActualNotEquals:  " ≠ ",
		ExpectedMatches:  " ⩳ ",
		PointingNested:   " ▶ ",
		ItemMatches:      "\U0001f495",
		ItemNotMatches:   "\U0001f494",
		ItemBadItemOrder: "↔",
		ItemBadSortOrder: "↕",
		ItemDuplicate:    "\U0001f46f",
		ItemUnwanted:     "\U0001f6af",
		LeftBracket:      "⦗",
		RightBracket:     "⦘",
	}
}

// ASCII returns the plain ASCII fallback set.
func ASCII() Set {
	return Set{
		ExpectedEquals:   " = ",
		ActualNotEquals:  " != ",
		ExpectedMatches:  " =~ ",
		PointingNested:   " >> ",
		ItemMatches:      "OK",
		ItemNotMatches:   "FAIL",
		ItemBadItemOrder: "<>",
		ItemBadSortOrder: "^v",
		ItemDuplicate:    "2+",
		ItemUnwanted:     "--",
		LeftBracket:      "[",
		RightBracket:     "]",
	}
}

// Bracketed wraps s in the set's brackets.
func (s Set) Bracketed(v string) string {
	return s.LeftBracket + v + s.RightBracket
}
