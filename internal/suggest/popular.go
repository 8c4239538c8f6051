package suggest

import (
	"sort"
	"strings"

	"github.com/jonathan/template-finder/internal/types"
)

const (
	seedTermWeight  = 10
	maxPopularTerms = 12
)

// seedTerms are always counted as frequently searched.
var seedTerms = []string{
	"software engineer", "data scientist", "marketing manager", "business analyst",
	"project manager", "sales manager", "financial analyst", "hr manager",
	"graphic designer", "product manager", "consultant", "teacher",
}

type termCount struct {
	term  string
	count int
}

// PopularSearchTerms returns up to twelve terms ranked by frequency.
// Seed job titles start at a weight of ten; each category and tag occurrence in
// the catalog adds one to its lowercased term. Equal counts keep first-seen order.
func PopularSearchTerms(templates []types.TemplateRecord) []string {
	counts := make([]termCount, 0, len(seedTerms)+len(templates))
	index := make(map[string]int, cap(counts))

	bump := func(term string, by int) {
		if i, ok := index[term]; ok {
			counts[i].count += by
			return
		}
		index[term] = len(counts)
		counts = append(counts, termCount{term: term, count: by})
	}

	for _, term := range seedTerms {
		bump(term, seedTermWeight)
	}
	for _, t := range templates {
		if t.Category != "" {
			bump(strings.ToLower(t.Category), 1)
		}
		for _, tag := range t.Tags {
			if tag != "" {
				bump(strings.ToLower(tag), 1)
			}
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	terms := make([]string, 0, maxPopularTerms)
	for i := 0; i < len(counts) && i < maxPopularTerms; i++ {
		terms = append(terms, counts[i].term)
	}
	return terms
}
