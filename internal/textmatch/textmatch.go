// Package textmatch provides text normalization and fuzzy answer matching.
package textmatch

import (
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the similarity ratio at or above which two normalized
// strings are treated as the same answer. Tolerates minor spelling slips
// without accepting different words.
const DefaultThreshold = 0.88

// minSlipLen is the minimum rune length at which a single-character slip
// (typo, dropped letter, adjacent swap) is forgiven regardless of the ratio.
// Short function words like "the" or "in" stay exact-or-ratio only.
const minSlipLen = 5

var whitespaceRE = regexp.MustCompile(`\s+`)

// Normalize lowercases, trims, and collapses internal whitespace.
func Normalize(s string) string {
	return whitespaceRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// Match reports whether a submitted answer matches the expected one:
// normalized equality, similarity ratio >= DefaultThreshold, or a single
// character slip in an answer of at least minSlipLen runes. The slip rule
// covers pairs like "recieve"/"receive", where the adjacent swap drags the
// ratio just under the threshold.
func Match(userVal, expected string) bool {
	a, b := Normalize(userVal), Normalize(expected)
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}
	if Ratio(a, b) >= DefaultThreshold {
		return true
	}
	return oneSlipApart(a, b)
}

// oneSlipApart reports whether a and b differ by exactly one substitution,
// one insertion or deletion, or one adjacent transposition, and both are
// long enough for the slip allowance.
func oneSlipApart(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < minSlipLen || len(rb) < minSlipLen {
		return false
	}
	switch len(ra) - len(rb) {
	case 0:
		return substitutionOrSwap(ra, rb)
	case 1:
		return oneDeletionApart(ra, rb)
	case -1:
		return oneDeletionApart(rb, ra)
	}
	return false
}

func substitutionOrSwap(a, b []rune) bool {
	mismatches := 0
	first := -1
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		mismatches++
		switch mismatches {
		case 1:
			first = i
		case 2:
			if i != first+1 || a[first] != b[i] || a[i] != b[first] {
				return false
			}
		default:
			return false
		}
	}
	return mismatches > 0
}

// oneDeletionApart reports whether short is long with exactly one rune removed.
func oneDeletionApart(long, short []rune) bool {
	i, j := 0, 0
	skipped := false
	for i < len(long) && j < len(short) {
		if long[i] == short[j] {
			i++
			j++
			continue
		}
		if skipped {
			return false
		}
		skipped = true
		i++
	}
	return true
}

// Ratio returns the character-level sequence similarity of a and b in [0, 1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ContainsWord reports whether word appears in s as a whole word,
// case-insensitively.
func ContainsWord(s, word string) bool {
	if s == "" || word == "" {
		return false
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(strings.TrimSpace(word))) + `\b`)
	return re.MatchString(Normalize(s))
}
