// Package ranking scores catalog templates against a free-text search query.
package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/template-finder/internal/fuzzy"
	"github.com/jonathan/template-finder/internal/taxonomy"
	"github.com/jonathan/template-finder/internal/types"
)

// SearchTemplates ranks templates by relevance to query.
// A blank query returns every template in catalog order with a zero score.
// Otherwise only templates with a positive score are returned, best first;
// equal scores keep catalog order.
func SearchTemplates(templates []types.TemplateRecord, query string) []types.SearchResult {
	if strings.TrimSpace(query) == "" {
		results := make([]types.SearchResult, 0, len(templates))
		for _, t := range templates {
			results = append(results, newResult(t))
		}
		return results
	}

	search := strings.ToLower(strings.TrimSpace(query))
	words := strings.Fields(search)
	jobTitleKeywords := taxonomy.JobTitleKeywords(search)

	results := make([]types.SearchResult, 0, len(templates))
	for _, t := range templates {
		result := scoreTemplate(t, search, words, jobTitleKeywords)
		if result.HasMatch {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return results
}

// scoreTemplate computes the relevance of a single template.
func scoreTemplate(t types.TemplateRecord, search string, words, jobTitleKeywords []string) types.SearchResult {
	result := newResult(t)
	allText := t.SearchText()
	score := 0.0

	add := func(field string, m fuzzy.Result, weight float64) {
		if !m.Match {
			return
		}
		score += m.Score * weight
		result.MatchDetails = append(result.MatchDetails, types.MatchDetail{
			Field: field,
			Score: m.Score,
			Type:  m.Type,
		})
	}

	if len(jobTitleKeywords) > 0 {
		add(fieldJobTitle, bestMatch(jobTitleKeywords, allText), jobTitleWeight)
	}
	add(fieldName, fuzzy.Match(search, t.Name, fuzzy.DefaultThreshold), nameWeight)
	add(fieldCategory, fuzzy.Match(search, t.Category, fuzzy.DefaultThreshold), categoryWeight)
	add(fieldTags, bestFieldMatch(search, t.Tags), tagWeight)
	add(fieldKeywords, bestFieldMatch(search, t.Keywords), keywordWeight)
	if t.Description != "" {
		add(fieldDescription, fuzzy.Match(search, t.Description, fuzzy.DefaultThreshold), descriptionWeight)
	}

	score += computeMultiWordScore(words, allText) * multiWordWeight

	if t.Popular {
		score += popularBonus
	}
	if t.HasATSScoreAtLeast(highATSThreshold) {
		score += highATSBonus
	}

	result.RelevanceScore = roundScore(score)
	result.HasMatch = score > 0
	return result
}

func newResult(t types.TemplateRecord) types.SearchResult {
	return types.SearchResult{
		TemplateRecord: t,
		MatchDetails:   []types.MatchDetail{},
		BuilderURL:     t.BuilderURL(),
	}
}
