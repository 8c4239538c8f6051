package recommend

import (
	"fmt"
	"testing"

	"github.com/jonathan/template-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atsScore(v float64) *float64 {
	return &v
}

func template(id string, tags ...string) types.TemplateRecord {
	return types.TemplateRecord{
		ID:       id,
		Name:     "Plain",
		Category: "Basic",
		Tags:     tags,
		Keywords: []string{},
	}
}

func TestScoreRecommendations_EntryTechScenario(t *testing.T) {
	tmpl := types.TemplateRecord{
		ID:       "fresh",
		Name:     "Fresh Start",
		Category: "Modern",
		Tags:     []string{"fresher", "modern", "tech", "ats"},
		Keywords: []string{},
		ATSScore: atsScore(95),
	}
	answers := types.QuizAnswers{
		Experience: "entry",
		Industry:   "tech",
		Style:      "modern",
		Goal:       "ats",
		Timeframe:  "urgent",
	}

	recs := ScoreRecommendations([]types.TemplateRecord{tmpl}, answers)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, 120, rec.Score)
	assert.Equal(t, 96, rec.MatchPercentage)
	assert.Equal(t, []string{
		"Perfect for entry-level professionals",
		"Optimized for tech industry",
		"Modern and contemporary design",
	}, rec.Reasons)
	assert.Equal(t, "/resume-builder?template=fresh", rec.BuilderURL)
}

func TestScoreRecommendations_MaximumScoreIsCapped(t *testing.T) {
	tmpl := types.TemplateRecord{
		ID:       "exec",
		Name:     "Executive Suite",
		Category: "Executive",
		Tags:     []string{"tech", "modern", "ats", "popular"},
		Keywords: []string{},
		Premium:  true,
		ATSScore: atsScore(99),
	}
	answers := types.QuizAnswers{Experience: "executive", Industry: "tech", Style: "modern", Goal: "ats", Timeframe: "planning"}

	recs := ScoreRecommendations([]types.TemplateRecord{tmpl}, answers)
	require.Len(t, recs, 1)
	assert.Equal(t, 125, recs[0].Score)
	assert.Equal(t, 98, recs[0].MatchPercentage)
	assert.Len(t, recs[0].Reasons, 3)
}

func TestScoreRecommendations_ResultCount(t *testing.T) {
	answers := types.QuizAnswers{Experience: "mid", Industry: "other", Style: "minimal", Goal: "versatile", Timeframe: "soon"}

	for _, n := range []int{0, 1, 3, 6, 7, 15} {
		t.Run(fmt.Sprintf("catalog_%d", n), func(t *testing.T) {
			catalog := make([]types.TemplateRecord, n)
			for i := range catalog {
				catalog[i] = template(fmt.Sprintf("t%d", i), "modern")
			}

			recs := ScoreRecommendations(catalog, answers)
			assert.NotNil(t, recs)
			assert.Len(t, recs, min(6, n))
		})
	}
}

func TestScoreRecommendations_MatchPercentageRange(t *testing.T) {
	catalog := []types.TemplateRecord{
		template("none"),
		template("modern", "modern", "tech"),
		{ID: "exec", Name: "Executive", Category: "Executive", Tags: []string{"premium", "leadership", "popular"}, Keywords: []string{"ats", "modern", "visual"}, Premium: true, ATSScore: atsScore(100)},
		{ID: "creative", Name: "Canvas", Category: "Creative", Tags: []string{"colorful", "portfolio"}, Keywords: []string{}, ATSScore: atsScore(82)},
		{ID: "minimal", Name: "Clean", Category: "Minimal", Tags: []string{"simple", "classic", "fresher"}, Keywords: []string{"academic"}, Popular: true},
	}

	count := 0
	for _, experience := range []string{"entry", "mid", "senior", "executive"} {
		for _, industry := range []string{"tech", "business", "creative", "healthcare", "education", "other"} {
			for _, style := range []string{"modern", "professional", "minimal", "creative"} {
				for _, goal := range []string{"ats", "impression", "versatile", "promotion"} {
					for _, timeframe := range []string{"urgent", "soon", "planning", "updating"} {
						answers := types.QuizAnswers{Experience: experience, Industry: industry, Style: style, Goal: goal, Timeframe: timeframe}
						for _, rec := range ScoreRecommendations(catalog, answers) {
							count++
							assert.GreaterOrEqual(t, rec.MatchPercentage, 0)
							assert.LessOrEqual(t, rec.MatchPercentage, 98)
							assert.NotEmpty(t, rec.Reasons)
							assert.LessOrEqual(t, len(rec.Reasons), 3)
						}
					}
				}
			}
		}
	}
	assert.Equal(t, 4*6*4*4*4*len(catalog), count)
}

func TestScoreRecommendations_FallbackReason(t *testing.T) {
	tmpl := template("plain")
	tmpl.Premium = true
	answers := types.QuizAnswers{Experience: "mid", Industry: "business", Style: "modern", Goal: "ats", Timeframe: "soon"}

	recs := ScoreRecommendations([]types.TemplateRecord{tmpl}, answers)
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].Score)
	assert.Equal(t, 0, recs[0].MatchPercentage)
	assert.Equal(t, []string{"Versatile professional template"}, recs[0].Reasons)
}

func TestScoreRecommendations_ATSBonus(t *testing.T) {
	answers := types.QuizAnswers{Experience: "mid", Industry: "other", Style: "modern", Goal: "ats", Timeframe: "soon"}

	high := template("high")
	high.Premium = true
	high.ATSScore = atsScore(92.5)
	good := template("good")
	good.Premium = true
	good.ATSScore = atsScore(85)
	zero := template("zero")
	zero.Premium = true
	zero.ATSScore = atsScore(0)

	recs := ScoreRecommendations([]types.TemplateRecord{zero, good, high}, answers)
	require.Len(t, recs, 3)

	assert.Equal(t, "high", recs[0].ID)
	assert.Equal(t, 10, recs[0].Score)
	assert.Equal(t, []string{"High ATS score: 92.5/100"}, recs[0].Reasons)

	assert.Equal(t, "good", recs[1].ID)
	assert.Equal(t, 5, recs[1].Score)
	assert.Equal(t, []string{"Versatile professional template"}, recs[1].Reasons)

	assert.Equal(t, "zero", recs[2].ID)
	assert.Equal(t, 0, recs[2].Score)
}

func TestScoreRecommendations_PopularBonus(t *testing.T) {
	answers := types.QuizAnswers{Experience: "mid", Industry: "other", Style: "modern", Goal: "ats", Timeframe: "soon"}

	flagged := template("flagged")
	flagged.Premium = true
	flagged.Popular = true
	trending := template("trending", "trending")
	trending.Premium = true

	recs := ScoreRecommendations([]types.TemplateRecord{flagged, trending}, answers)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, 5, rec.Score)
		assert.Equal(t, []string{"Popular among job seekers"}, rec.Reasons)
	}
}

func TestScoreRecommendations_TiesKeepCatalogOrder(t *testing.T) {
	answers := types.QuizAnswers{Experience: "entry", Industry: "tech", Style: "modern", Goal: "ats", Timeframe: "urgent"}
	catalog := []types.TemplateRecord{
		template("low"),
		template("a", "modern"),
		template("b", "modern"),
		template("c", "modern"),
	}

	recs := ScoreRecommendations(catalog, answers)
	require.Len(t, recs, 4)
	assert.Equal(t, []string{"a", "b", "c", "low"}, []string{recs[0].ID, recs[1].ID, recs[2].ID, recs[3].ID})
	assert.Equal(t, recs[0].Score, recs[2].Score)
}

func TestMatchPercentage(t *testing.T) {
	assert.Equal(t, 0, matchPercentage(0))
	assert.Equal(t, 4, matchPercentage(5))
	assert.Equal(t, 96, matchPercentage(120))
	assert.Equal(t, 98, matchPercentage(125))
	assert.Equal(t, 98, matchPercentage(200))
}
