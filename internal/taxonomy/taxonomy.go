// Package taxonomy maps job titles and industries to the keywords templates are tagged with.
package taxonomy

import "strings"

// Outcome names the lookup rule that produced a Resolution.
type Outcome string

// Resolution outcomes, in the order the rules are tried.
const (
	OutcomeExact    Outcome = "exact"
	OutcomePartial  Outcome = "partial"
	OutcomeIndustry Outcome = "industry"
	OutcomeNone     Outcome = "none"
)

// Resolution is the result of resolving a search term against the tables.
type Resolution struct {
	Keywords []string
	Outcome  Outcome
	// Key is the job title or industry that matched, empty for OutcomeNone
	Key string
}

// JobTitleKeywords returns the keywords associated with a search term, or an
// empty slice when the term matches nothing.
func JobTitleKeywords(term string) []string {
	return Resolve(term).Keywords
}

// Resolve looks a term up in the job-title table, first exactly then by
// substring in either direction, and falls back to the industry table.
// The returned keyword slice is a copy the caller may keep.
func Resolve(term string) Resolution {
	search := strings.ToLower(strings.TrimSpace(term))
	if search == "" {
		return Resolution{Keywords: []string{}, Outcome: OutcomeNone}
	}

	if i, ok := jobTitleIndex[search]; ok {
		return resolved(jobTitles[i], OutcomeExact)
	}

	for _, e := range jobTitles {
		if strings.Contains(e.key, search) || strings.Contains(search, e.key) {
			return resolved(e, OutcomePartial)
		}
	}

	for _, e := range industries {
		if strings.Contains(search, e.key) || containsAny(search, e.keywords) {
			return resolved(e, OutcomeIndustry)
		}
	}

	return Resolution{Keywords: []string{}, Outcome: OutcomeNone}
}

// JobTitles returns the job-title keys in table order.
func JobTitles() []string {
	return keys(jobTitles)
}

// Industries returns the industry names in table order.
func Industries() []string {
	return keys(industries)
}

func resolved(e entry, outcome Outcome) Resolution {
	return Resolution{
		Keywords: append([]string(nil), e.keywords...),
		Outcome:  outcome,
		Key:      e.key,
	}
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func keys(entries []entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.key
	}
	return out
}
