package cli

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/getmatchd/matchd/pkg/fluent"
	"github.com/getmatchd/matchd/pkg/logging"
	"github.com/getmatchd/matchd/pkg/predicate"
	"github.com/getmatchd/matchd/pkg/symbols"
)

var (
	checkExpectFile string
	checkInputFile  string
	checkASCII      bool
	checkLogLevel   string
)

// ErrNoMatch is returned when the input does not meet the expectations.
var ErrNoMatch = errors.New("input did not meet expectations")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a JSON sequence against an expectation file",
	Long: `Check a JSON sequence against a YAML expectation file.

The expectation file declares the sequence-level constraints and per-item
expectations:

  size: 3
  exactly: false
  ordered: true
  sorted: false
  unique: true
  items:
    - value: "news"
    - expr: 'item startsWith "Ron"'
    - jsonpath: { path: "$.id", value: 42 }

The input file holds a JSON array. The command exits non-zero and prints
the findings and the per-item diagnostic table when the sequence does not
match.`,
	Example: `  # Check data.json against expectations.yaml
  matchd check -e expectations.yaml -i data.json

  # Plain ASCII diagnostics
  matchd check -e expectations.yaml -i data.json --ascii`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkExpectFile, "expect", "e", "", "YAML expectation file (required)")
	checkCmd.Flags().StringVarP(&checkInputFile, "input", "i", "", "JSON input file (required)")
	checkCmd.Flags().BoolVar(&checkASCII, "ascii", false, "render diagnostics with the ASCII symbol set")
	checkCmd.Flags().StringVar(&checkLogLevel, "log-level", "info", "log level (debug enables evaluation traces)")
	_ = checkCmd.MarkFlagRequired("expect")
	_ = checkCmd.MarkFlagRequired("input")
}

// checkSpec is the YAML shape of an expectation file.
type checkSpec struct {
	Size    *int        `yaml:"size"`
	Exactly bool        `yaml:"exactly"`
	Ordered bool        `yaml:"ordered"`
	Sorted  bool        `yaml:"sorted"`
	Unique  bool        `yaml:"unique"`
	Items   []checkItem `yaml:"items"`
}

// checkItem is one declared item expectation. Exactly one field may be set.
type checkItem struct {
	Value    *any           `yaml:"value"`
	Expr     string         `yaml:"expr"`
	JSONPath *jsonPathCheck `yaml:"jsonpath"`
}

type jsonPathCheck struct {
	Path  string `yaml:"path"`
	Value any    `yaml:"value"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(checkExpectFile)
	if err != nil {
		return err
	}
	input, err := loadInput(checkInputFile)
	if err != nil {
		return err
	}
	m, err := buildMatcher(spec)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if m.Matches(input) {
		fmt.Fprintf(out, "OK (score %.2f)\n", m.Score())
		return nil
	}
	fmt.Fprintf(out, "score %.2f\n", m.Score())
	m.DescribeMismatch(out, input)
	return ErrNoMatch
}

func loadSpec(path string) (checkSpec, error) {
	var spec checkSpec
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("reading expectation file: %w", err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("parsing expectation file %s: %w", path, err)
	}
	return spec, nil
}

// loadInput parses the JSON input. A top-level JSON null maps to a nil
// sequence, which the matcher treats as absent.
func loadInput(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	var input []any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parsing input file %s: expected a JSON array: %w", path, err)
	}
	return input, nil
}

// buildMatcher translates the spec into a fluent matcher. Configuration
// panics from the fluent surface (bad expressions, inconsistent sizes)
// are converted back into ordinary errors at this boundary.
func buildMatcher(spec checkSpec) (m *fluent.SequenceMatcher[any], err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok || !errors.Is(e, predicate.ErrInvalidConfig) {
			panic(r)
		}
		m, err = nil, e
	}()

	m = fluent.ASequenceOf[any]()
	if spec.Size != nil {
		m.OfSize(*spec.Size)
	}
	if spec.Exactly {
		m.Exactly()
	}
	if spec.Ordered {
		m.Ordered()
	}
	if spec.Sorted {
		m.SortedBy(compareJSON)
	}
	if spec.Unique {
		m.Unique()
	}
	for i, item := range spec.Items {
		p, perr := itemPredicate(item)
		if perr != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, perr)
		}
		m.WithItemsMatching(p)
	}
	if checkASCII {
		m.WithSymbols(symbols.ASCII())
	}
	level := logging.ParseLevel(checkLogLevel)
	if level == logging.LevelDebug {
		m.WithLogger(logging.New(logging.Config{Level: level}))
	}
	return m, nil
}

func itemPredicate(item checkItem) (predicate.Predicate[any], error) {
	set := 0
	for _, present := range []bool{item.Value != nil, item.Expr != "", item.JSONPath != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("exactly one of value, expr or jsonpath must be set")
	}
	switch {
	case item.Value != nil:
		return predicate.EqualTo(*item.Value), nil
	case item.Expr != "":
		return predicate.Expr[any](item.Expr), nil
	default:
		return predicate.JSONPath(item.JSONPath.Path, item.JSONPath.Value), nil
	}
}

// compareJSON orders decoded JSON scalars: numbers before strings, both
// by value; everything else compares equal.
func compareJSON(a, b any) int {
	an, aok := toNumber(a)
	bn, bok := toNumber(b)
	switch {
	case aok && bok:
		return cmp.Compare(an, bn)
	case aok:
		return -1
	case bok:
		return 1
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return cmp.Compare(as, bs)
	}
	return 0
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
