// Package typing implements the advisory typed-answer check used in
// typing-check mode. Its verdict never blocks grading.
package typing

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Verdict is the advisory outcome of comparing a typed answer with the
// card's back text.
type Verdict string

const (
	// VerdictClose means the typed answer is correct or very close.
	VerdictClose Verdict = "close_enough"
	// VerdictCompare means the reviewer should compare manually.
	VerdictCompare Verdict = "compare_manually"
)

// Normalize lowercases, trims and collapses internal whitespace so the
// comparison ignores casing and spacing.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Check compares the typed text against the expected back text. The
// answer counts as close when its edit distance from the normalized
// target is at most max(1, floor(0.2 * len(target))).
func Check(typed, target string) Verdict {
	typed = Normalize(typed)
	target = Normalize(target)

	threshold := len([]rune(target)) / 5
	if threshold < 1 {
		threshold = 1
	}
	if levenshtein.ComputeDistance(typed, target) <= threshold {
		return VerdictClose
	}
	return VerdictCompare
}
