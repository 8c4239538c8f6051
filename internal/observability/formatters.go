// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/template-finder/internal/taxonomy"
	"github.com/jonathan/template-finder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintResolution outputs how a search term resolved against the job title
// and industry tables.
func (p *Printer) PrintResolution(query string, res taxonomy.Resolution) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Query:    %q\n", query))
	sb.WriteString(fmt.Sprintf("Outcome:  %s\n", res.Outcome))
	if res.Key != "" {
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", res.Key))
	}
	if len(res.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords: %s", strings.Join(res.Keywords, ", ")))
	} else {
		sb.WriteString("Keywords: (none)")
	}

	p.printBox("QUERY RESOLUTION", sb.String())
}

// PrintSearchResults outputs the top scored results with their match details.
func (p *Printer) PrintSearchResults(results []types.SearchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total results: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.Name))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", r.RelevanceScore))
		for _, d := range r.MatchDetails {
			sb.WriteString(fmt.Sprintf("    %-12s %-10s %.2f\n", d.Field, d.Type, d.Score))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more results", len(results)-maxItemsToShow))
	}

	p.printBox("TOP SEARCH RESULTS", sb.String())
}

// PrintAnswers outputs the quiz answers a recommendation run was scored with.
func (p *Printer) PrintAnswers(answers types.QuizAnswers) {
	var sb strings.Builder
	for i, dimension := range types.Dimensions {
		sb.WriteString(fmt.Sprintf("%-11s %s", dimension+":", answers.Get(dimension)))
		if i < len(types.Dimensions)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("QUIZ ANSWERS", sb.String())
}

// PrintRecommendations outputs raw scores next to the displayed percentages.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, r := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.Name))
		sb.WriteString(fmt.Sprintf("    Score: %d  Match: %d%%  Reasons: %d", r.Score, r.MatchPercentage, len(r.Reasons)))
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATION SCORES", sb.String())
}
