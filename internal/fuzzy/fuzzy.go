// Package fuzzy provides edit-distance based string matching for template search.
package fuzzy

import (
	"strings"
)

// DefaultThreshold is the minimum similarity accepted as a fuzzy match.
const DefaultThreshold = 0.7

// Scores assigned by the non-similarity tiers.
const (
	exactScore          = 1.0
	prefixScore         = 0.9
	wordFuzzyMultiplier = 0.8
)

// Match types, in priority order.
const (
	TypeExact     = "exact"
	TypePrefix    = "prefix"
	TypeFuzzy     = "fuzzy"
	TypeWordFuzzy = "word-fuzzy"
	TypeNone      = "none"
)

// Result describes how well a term matched a text.
type Result struct {
	Match bool    `json:"match"`
	Score float64 `json:"score"`
	Type  string  `json:"type"`
}

// NoMatch is the zero-score result.
var NoMatch = Result{Match: false, Score: 0, Type: TypeNone}

// Match tests term against text using the first satisfied tier:
// containment, word prefix, whole-string similarity, then best per-word similarity.
// Both inputs are compared case-insensitively.
func Match(term, text string, threshold float64) Result {
	search := strings.ToLower(term)
	target := strings.ToLower(text)

	if strings.Contains(target, search) {
		return Result{Match: true, Score: exactScore, Type: TypeExact}
	}

	words := strings.Fields(target)
	for _, word := range words {
		if strings.HasPrefix(word, search) {
			return Result{Match: true, Score: prefixScore, Type: TypePrefix}
		}
	}

	if similarity := Similarity(search, target); similarity >= threshold {
		return Result{Match: true, Score: similarity, Type: TypeFuzzy}
	}

	best := 0.0
	for _, word := range words {
		if similarity := Similarity(search, word); similarity > best {
			best = similarity
		}
	}
	if len(words) > 0 && best >= threshold {
		return Result{Match: true, Score: best * wordFuzzyMultiplier, Type: TypeWordFuzzy}
	}

	return NoMatch
}

// Similarity returns 1 - distance/maxLen for two strings, in [0, 1].
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(a, b))/float64(maxLen)
}

// Levenshtein computes the case-insensitive edit distance between two strings
// with unit cost insertions, deletions and substitutions.
func Levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Single-row DP
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
