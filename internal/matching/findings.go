package matching

import "fmt"

// Finding messages. Findings are deduplicated by message identity, so each
// condition contributes at most one entry per evaluation.
const (
	// FindingNilSequence reports an absent observed sequence.
	FindingNilSequence = "Actual sequence was nil."

	// FindingIncomplete reports that at least one declared expectation
	// matched no item exactly.
	FindingIncomplete = "Not all expectations were fulfilled."

	// FindingUnexpectedItems reports surplus items under exhaustive
	// matching.
	FindingUnexpectedItems = "Unexpected actual items."

	// FindingUnmatchable reports expectations competing for the same
	// items: more expectations matched than distinct items matched.
	FindingUnmatchable = "Could not find matches for all expectations."

	// FindingOutOfOrder reports items that did not appear in declaration
	// order.
	FindingOutOfOrder = "Items did not appear in the expected order."

	// FindingUnsorted reports a sequence that violates the configured
	// sort order.
	FindingUnsorted = "Sequence is not sorted."

	// FindingDuplicates reports items equal under the configured
	// equality.
	FindingDuplicates = "Detected duplicates."
)

// sizeMismatchFinding formats the size-mismatch message.
func sizeMismatchFinding(expected, actual int) string {
	return fmt.Sprintf("Size mismatch. Expected: %d. Actual was: %d.", expected, actual)
}
