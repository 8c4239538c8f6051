package suggest

import (
	"fmt"
	"testing"

	"github.com/jonathan/template-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopularSearchTerms_EmptyCatalog(t *testing.T) {
	assert.Equal(t, seedTerms, PopularSearchTerms(nil))
}

func TestPopularSearchTerms_CatalogTermsOutrankSeeds(t *testing.T) {
	catalog := make([]types.TemplateRecord, 11)
	for i := range catalog {
		catalog[i] = types.TemplateRecord{
			ID:       fmt.Sprintf("t%d", i),
			Name:     "Template",
			Category: "Modern",
			Tags:     []string{"Tech"},
			Keywords: []string{},
		}
	}

	got := PopularSearchTerms(catalog)
	require.Len(t, got, 12)
	assert.Equal(t, "modern", got[0])
	assert.Equal(t, "tech", got[1])
	assert.Equal(t, seedTerms[:10], got[2:])
}

func TestPopularSearchTerms_CountsMergeWithSeeds(t *testing.T) {
	catalog := []types.TemplateRecord{
		{ID: "1", Name: "A", Category: "", Tags: []string{"Teacher", ""}, Keywords: []string{}},
	}

	got := PopularSearchTerms(catalog)
	require.Len(t, got, 12)
	// teacher is boosted to 11 and moves ahead of the other seeds
	assert.Equal(t, "teacher", got[0])
	assert.NotContains(t, got, "")
}

func TestPopularSearchTerms_SkipsEmptyTerms(t *testing.T) {
	catalog := make([]types.TemplateRecord, 11)
	for i := range catalog {
		catalog[i] = types.TemplateRecord{
			ID:       fmt.Sprintf("t%d", i),
			Name:     "Template",
			Tags:     []string{""},
			Keywords: []string{},
		}
	}

	// eleven blank tags would outrank every seed if they were counted
	assert.Equal(t, seedTerms, PopularSearchTerms(catalog))
}
