package catalog

import "github.com/jonathan/template-finder/internal/types"

// AllCategories is the pseudo-category that disables filtering.
const AllCategories = "All"

// Categories returns the distinct non-empty categories in first-seen order.
func Categories(records []types.TemplateRecord) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, rec := range records {
		if rec.Category == "" || seen[rec.Category] {
			continue
		}
		seen[rec.Category] = true
		categories = append(categories, rec.Category)
	}
	return categories
}

// FilterCategory keeps the items in category, preserving order.
// An empty category or AllCategories returns items unchanged.
func FilterCategory[T interface{ InCategory(string) bool }](items []T, category string) []T {
	if category == "" || category == AllCategories {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.InCategory(category) {
			out = append(out, item)
		}
	}
	return out
}
