package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/template-finder/internal/fuzzy"
)

// bestMatch returns the strongest match of any term against text.
// Later terms only replace the current best when strictly better.
func bestMatch(terms []string, text string) fuzzy.Result {
	best := fuzzy.NoMatch
	for _, term := range terms {
		m := fuzzy.Match(term, text, fuzzy.DefaultThreshold)
		if m.Match && m.Score > best.Score {
			best = m
		}
	}
	return best
}

// bestFieldMatch returns the strongest match of search against any of the values.
func bestFieldMatch(search string, values []string) fuzzy.Result {
	best := fuzzy.NoMatch
	for _, value := range values {
		m := fuzzy.Match(search, value, fuzzy.DefaultThreshold)
		if m.Match && m.Score > best.Score {
			best = m
		}
	}
	return best
}

// computeMultiWordScore returns the fraction of query words contained in text.
// Single-word queries score 0.
func computeMultiWordScore(words []string, text string) float64 {
	if len(words) < 2 {
		return 0.0
	}

	matches := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			matches++
		}
	}
	return float64(matches) / float64(len(words))
}

// roundScore rounds half up to two decimals.
func roundScore(score float64) float64 {
	return math.Floor(score*scorePrecision+0.5) / scorePrecision
}
