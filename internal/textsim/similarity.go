// Package textsim scores how close a typed answer is to a target word.
package textsim

import (
	"math"
	"strings"

	"github.com/agext/levenshtein"
)

// Score returns the percentage similarity between target and candidate,
// defined as round(100 * (L - D) / L) where L is the length of the longer
// string and D is the edit distance (insertions, deletions, substitutions,
// unit cost) between the lowercased strings. Two empty strings score 100.
// The result is always in [0, 100] because D never exceeds L.
func Score(target, candidate string) int {
	a := strings.ToLower(target)
	b := strings.ToLower(candidate)

	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 100
	}

	dist := levenshtein.Distance(a, b, nil)
	pct := int(math.Round(100 * float64(longest-dist) / float64(longest)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
