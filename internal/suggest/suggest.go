// Package suggest provides search autocompletion and popular search terms.
package suggest

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/template-finder/internal/taxonomy"
	"github.com/jonathan/template-finder/internal/types"
)

const (
	minPartialLength = 2
	maxSuggestions   = 8
)

// SearchSuggestions returns up to eight completions for a partial query.
// Job titles come first, then industries, then template names, categories,
// tags and keywords, each in catalog order and original case.
func SearchSuggestions(templates []types.TemplateRecord, partial string) []string {
	if utf8.RuneCountInString(partial) < minPartialLength {
		return []string{}
	}

	search := strings.ToLower(partial)
	set := newOrderedSet()

	for _, title := range taxonomy.JobTitles() {
		if strings.Contains(title, search) {
			set.add(title)
		}
	}
	for _, industry := range taxonomy.Industries() {
		if strings.Contains(industry, search) {
			set.add(industry)
		}
	}

	addMatching := func(values ...string) {
		for _, v := range values {
			if v != "" && strings.Contains(strings.ToLower(v), search) {
				set.add(v)
			}
		}
	}
	for _, t := range templates {
		addMatching(t.Name, t.Category)
		addMatching(t.Tags...)
		addMatching(t.Keywords...)
	}

	return set.first(maxSuggestions)
}

// orderedSet keeps strings unique in insertion order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) first(n int) []string {
	out := make([]string, 0, min(n, len(s.items)))
	for i := 0; i < len(s.items) && i < n; i++ {
		out = append(out, s.items[i])
	}
	return out
}
