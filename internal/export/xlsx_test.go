package export

import (
	"bytes"
	"testing"

	"github.com/jonathan/template-finder/internal/catalog"
	"github.com/jonathan/template-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{sheet}, f.GetSheetList())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWriteSearchResults(t *testing.T) {
	score := 95.0
	results := []types.SearchResult{
		{
			TemplateRecord: types.TemplateRecord{ID: "t1", Name: "Tech Pro", Category: "Modern", ATSScore: &score},
			RelevanceScore: 55,
			MatchDetails: []types.MatchDetail{
				{Field: "job_title", Score: 50, Type: "exact"},
				{Field: "multi_word", Score: 5, Type: "multi"},
			},
			HasMatch:   true,
			BuilderURL: "/resume-builder?template=t1",
		},
		{
			TemplateRecord: types.TemplateRecord{ID: "t2", Name: "Plain", Category: "Basic"},
			RelevanceScore: 10,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSearchResults(&buf, results))

	rows := readRows(t, buf.Bytes(), SheetSearch)
	require.Len(t, rows, 3)
	assert.Equal(t, searchHeaders, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Tech Pro", rows[1][2])
	assert.Equal(t, "55", rows[1][4])
	assert.Equal(t, "job_title, multi_word", rows[1][5])
	assert.Equal(t, "95", rows[1][8])
	assert.Equal(t, "/resume-builder?template=t1", rows[1][9])
	assert.Equal(t, "t2", rows[2][1])
}

func TestWriteRecommendations(t *testing.T) {
	recs := []types.Recommendation{
		{
			TemplateRecord:  types.TemplateRecord{ID: "r1", Name: "Starter", Category: "Modern"},
			Score:           120,
			Reasons:         []string{"Perfect for entry-level professionals", "Great for tech industry"},
			MatchPercentage: 96,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecommendations(&buf, recs))

	rows := readRows(t, buf.Bytes(), SheetRecommendations)
	require.Len(t, rows, 2)
	assert.Equal(t, recommendationHeaders, rows[0])
	assert.Equal(t, "120", rows[1][4])
	assert.Equal(t, "96", rows[1][5])
	assert.Equal(t, "Perfect for entry-level professionals; Great for tech industry", rows[1][6])
}

func TestWriteSearchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSearchResults(&buf, nil))

	rows := readRows(t, buf.Bytes(), SheetSearch)
	require.Len(t, rows, 1)
}

func TestWriteCatalog_RoundTrip(t *testing.T) {
	score := 88.5
	records := []types.TemplateRecord{
		{
			ID: "a", Name: "Alpha", Category: "One-Pager", Description: "Short and sharp",
			Tags: []string{"tech", "startup"}, Keywords: []string{"developer"},
			Premium: true, ATSScore: &score, TemplateID: "op-a",
		},
		{ID: "b", Name: "Beta", Category: "Modern", Tags: []string{}, Keywords: []string{}, Popular: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCatalog(&buf, records))

	decoded, err := catalog.DecodeXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}
