// Package prose renders expectation descriptions and per-item mismatch
// tables for human consumption. It is presentation glue around the
// evaluation state; the symbol set is injected by the caller.
package prose

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"

	"github.com/getmatchd/matchd/internal/matching"
	"github.com/getmatchd/matchd/pkg/match"
	"github.com/getmatchd/matchd/pkg/predicate"
	"github.com/getmatchd/matchd/pkg/symbols"
)

// Expectations writes a human-readable rendering of the configured
// expectations.
func Expectations[T any](w io.Writer, s *matching.Settings[T], sym symbols.Set) {
	fmt.Fprintf(w, "a sequence of %s items", s.TypeName)
	if s.ExpectedSize >= 0 {
		fmt.Fprintf(w, "\n- of size %d", s.ExpectedSize)
	}
	if s.Exhaustive {
		fmt.Fprint(w, "\n- with no unexpected items")
	}
	if s.Ordered {
		fmt.Fprint(w, "\n- in the declared item order")
	}
	if s.Sorted {
		fmt.Fprint(w, "\n- sorted")
	}
	if s.Unique {
		fmt.Fprint(w, "\n- without duplicates")
	}
	if len(s.Expectations) > 0 {
		fmt.Fprint(w, "\n- with items:")
		for _, exp := range s.Expectations {
			fmt.Fprintf(w, "\n  %s", sym.Bracketed(predicate.Describe(exp)))
		}
	}
	fmt.Fprintln(w)
}

// Mismatch writes the findings followed by one diagnostic line per
// observed item.
func Mismatch[T any](w io.Writer, ev *matching.Evaluation[T], sym symbols.Set) {
	fmt.Fprintln(w, "Findings:")
	for _, f := range ev.Findings {
		fmt.Fprintf(w, "%q\n", f.Description)
	}
	results := ev.ItemResults()
	widest := 1
	for _, r := range results {
		if l := displayWidth(itemString(r.Value)); l > widest {
			widest = l
		}
	}
	for _, r := range results {
		fmt.Fprintln(w, Line(r, len(results), widest, sym))
	}
}

// Line renders one item's diagnostic record. Index and value columns are
// padded to fixed widths so the flag symbols line up across items.
func Line[T any](r match.ItemResult[T], total, widest int, sym symbols.Set) string {
	var b strings.Builder
	if r.Matched {
		b.WriteString(sym.ItemMatches)
	} else {
		b.WriteString(sym.ItemNotMatches)
	}
	b.WriteString(" ")
	b.WriteString(sym.Bracketed(padLeft(fmt.Sprintf("%d", r.Index), digits(total))))
	b.WriteString(sym.Bracketed(padRight(itemString(r.Value), widest)))

	b.WriteString(flag(r.BreaksItemOrder, sym.ItemBadItemOrder))
	b.WriteString(flag(r.BreaksSortOrder, sym.ItemBadSortOrder))
	b.WriteString(flag(r.Duplicate, sym.ItemDuplicate))
	b.WriteString(flag(r.Unwanted, sym.ItemUnwanted))

	if !r.Matched && len(r.Candidates) > 0 {
		descs := make([]string, len(r.Candidates))
		for i, c := range r.Candidates {
			descs[i] = sym.Bracketed(predicate.Describe(c.Predicate))
		}
		b.WriteString(sym.ActualNotEquals)
		b.WriteString(strings.Join(descs, "; "))
	}
	return b.String()
}

func flag(set bool, symbol string) string {
	if set {
		return " " + symbol
	}
	return " " + strings.Repeat(" ", displayWidth(symbol))
}

func itemString(v any) string {
	return fmt.Sprintf("%v", v)
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func padLeft(s string, w int) string {
	if pad := w - displayWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func padRight(s string, w int) string {
	if pad := w - displayWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// displayWidth approximates the terminal cell width of s: East Asian wide
// and fullwidth runes, including the emoji in the default symbol set,
// occupy two cells.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
