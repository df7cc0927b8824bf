package prose

import (
	"strings"
	"testing"

	"github.com/getmatchd/matchd/internal/matching"
	"github.com/getmatchd/matchd/pkg/match"
	"github.com/getmatchd/matchd/pkg/predicate"
	"github.com/getmatchd/matchd/pkg/symbols"
)

func TestLine_Matched(t *testing.T) {
	r := match.ItemResult[string]{Value: "x", Index: 0, Matched: true}
	line := Line(r, 1, 1, symbols.ASCII())

	if got := strings.TrimRight(line, " "); got != "OK [0][x]" {
		t.Errorf("unexpected line: %q", got)
	}
}

func TestLine_MatchedWithFlags(t *testing.T) {
	r := match.ItemResult[string]{
		Value:           "x",
		Index:           2,
		Matched:         true,
		BreaksItemOrder: true,
		Duplicate:       true,
	}
	line := Line(r, 3, 1, symbols.ASCII())

	for _, want := range []string{"OK", "[2]", "<>", "2+"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "^v") || strings.Contains(line, "--") {
		t.Errorf("line %q carries flags that are not set", line)
	}
}

func TestLine_UnmatchedListsCandidates(t *testing.T) {
	r := match.ItemResult[string]{
		Value: "fake",
		Index: 0,
		Candidates: []match.Candidate[string]{
			{Index: 1, Predicate: predicate.EqualTo("news"), Score: 0.0},
			{Index: 0, Predicate: predicate.Satisfying("short", never), Score: 0.0},
		},
	}
	line := Line(r, 1, 4, symbols.ASCII())

	if !strings.Contains(line, "FAIL") {
		t.Errorf("line %q missing mismatch symbol", line)
	}
	if !strings.Contains(line, "[= news]; [short]") {
		t.Errorf("line %q missing ranked candidates", line)
	}
}

func TestLine_PadsValueColumn(t *testing.T) {
	r := match.ItemResult[string]{Value: "ab", Index: 0, Matched: true}
	line := Line(r, 1, 5, symbols.ASCII())

	if !strings.Contains(line, "[ab   ]") {
		t.Errorf("expected padded value column in %q", line)
	}
}

func TestMismatch_RendersFindingsAndItems(t *testing.T) {
	s := matching.NewSettings[string]()
	s.ExpectedSize = 2
	s.Expectations = []predicate.Predicate[string]{predicate.EqualTo("a")}
	ev, err := matching.Evaluate(&s, []string{"b"}, true)
	if err != nil {
		t.Fatalf("unexpected configuration error: %v", err)
	}

	var b strings.Builder
	Mismatch(&b, ev, symbols.ASCII())
	out := b.String()

	for _, want := range []string{
		"Findings:",
		`"Size mismatch. Expected: 2. Actual was: 1."`,
		`"Not all expectations were fulfilled."`,
		"FAIL",
		"[b]",
		"[= a]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExpectations_RendersConfiguration(t *testing.T) {
	s := matching.NewSettings[int]()
	s.ExpectedSize = 3
	s.Exhaustive = true
	s.Sorted = true
	s.Expectations = []predicate.Predicate[int]{predicate.EqualTo(7)}

	var b strings.Builder
	Expectations(&b, &s, symbols.ASCII())
	out := b.String()

	for _, want := range []string{
		"a sequence of int items",
		"- of size 3",
		"- with no unexpected items",
		"- sorted",
		"[= 7]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDisplayWidth_WideRunes(t *testing.T) {
	if w := displayWidth("💔"); w != 2 {
		t.Errorf("expected width 2 for emoji, got %d", w)
	}
	if w := displayWidth("ab"); w != 2 {
		t.Errorf("expected width 2 for ascii pair, got %d", w)
	}
}

// never satisfies the non-nil requirement of Satisfying in tests that only
// inspect descriptions.
func never(string) bool { return false }
