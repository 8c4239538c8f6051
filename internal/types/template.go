// Package types provides type definitions for structured data used throughout the template-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"net/url"
	"strings"
)

// Category names that route to dedicated builders.
const (
	CategoryOnePager    = "One-Pager"
	CategoryJobSpecific = "Job-Specific"
)

// TemplateRecord is a single resume template from the catalog.
// Tags and Keywords are never nil once the record has passed catalog normalization.
type TemplateRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	Keywords    []string `json:"keywords"`
	Premium     bool     `json:"premium"`
	Popular     bool     `json:"popular"`
	// ATSScore is nil when the catalog does not rate the template (0-100 otherwise)
	ATSScore   *float64 `json:"atsScore,omitempty"`
	TemplateID string   `json:"templateId,omitempty"`
}

// HasATSScoreAtLeast reports whether the template carries an ATS score of at least min.
// A zero score is treated like a missing one.
func (t *TemplateRecord) HasATSScoreAtLeast(min float64) bool {
	return t.ATSScore != nil && *t.ATSScore != 0 && *t.ATSScore >= min
}

// BuilderURL returns the editor link for the template.
func (t *TemplateRecord) BuilderURL() string {
	switch t.Category {
	case CategoryOnePager:
		id := t.TemplateID
		if id == "" {
			id = t.ID
		}
		return "/one-pager-builder/editor?template=" + url.QueryEscape(id)
	case CategoryJobSpecific:
		return "/job-specific-resume-builder?template=" + url.QueryEscape(t.ID)
	default:
		return "/resume-builder?template=" + url.QueryEscape(t.ID)
	}
}

// SearchText joins name, category, description, tags and keywords into one lowercase string.
func (t *TemplateRecord) SearchText() string {
	parts := make([]string, 0, 3+len(t.Tags)+len(t.Keywords))
	parts = append(parts, t.Name, t.Category, t.Description)
	parts = append(parts, t.Tags...)
	parts = append(parts, t.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}

// MetadataText joins name, category, tags and keywords into one lowercase string.
// Unlike SearchText it leaves the description out.
func (t *TemplateRecord) MetadataText() string {
	parts := make([]string, 0, 2+len(t.Tags)+len(t.Keywords))
	parts = append(parts, t.Name, t.Category)
	parts = append(parts, t.Tags...)
	parts = append(parts, t.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}

// MatchDetail records one field that contributed to a search relevance score.
type MatchDetail struct {
	Field string  `json:"field"`
	Score float64 `json:"score"`
	Type  string  `json:"type"`
}

// SearchResult is a template scored against a free-text query.
type SearchResult struct {
	TemplateRecord
	RelevanceScore float64       `json:"relevanceScore"`
	MatchDetails   []MatchDetail `json:"matchDetails"`
	HasMatch       bool          `json:"hasMatch"`
	BuilderURL     string        `json:"builderUrl,omitempty"`
}

// Recommendation is a template scored against quiz answers.
type Recommendation struct {
	TemplateRecord
	Score           int      `json:"score"`
	Reasons         []string `json:"reasons"`
	MatchPercentage int      `json:"matchPercentage"`
	BuilderURL      string   `json:"builderUrl,omitempty"`
}

// InCategory reports whether the template belongs to category (exact match).
func (t TemplateRecord) InCategory(category string) bool {
	return t.Category == category
}
