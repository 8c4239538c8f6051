package recommend

import (
	"testing"

	"github.com/jonathan/template-finder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreDimension(t *testing.T) {
	tests := []struct {
		name      string
		dimension string
		answer    string
		template  types.TemplateRecord
		points    int
		matched   bool
	}{
		{"entry primary", types.DimensionExperience, "entry", template("t", "graduate"), 35, true},
		{"entry fallback", types.DimensionExperience, "entry", template("t", "professional"), 20, true},
		{"mid fallback", types.DimensionExperience, "mid", template("t", "senior"), 15, true},
		{"senior fallback", types.DimensionExperience, "senior", template("t", "modern"), 25, true},
		{"executive via category", types.DimensionExperience, "executive", types.TemplateRecord{Name: "Plain", Category: "Executive"}, 35, true},
		{"executive fallback", types.DimensionExperience, "executive", template("t", "leadership"), 20, true},
		{"tech fallback", types.DimensionIndustry, "tech", types.TemplateRecord{Name: "Plain", Category: "Professional"}, 15, true},
		{"creative fallback", types.DimensionIndustry, "creative", template("t", "modern"), 20, true},
		{"business has no fallback", types.DimensionIndustry, "business", template("t", "modern"), 0, false},
		{"healthcare primary", types.DimensionIndustry, "healthcare", template("t", "clean"), 30, true},
		{"education has no fallback", types.DimensionIndustry, "education", template("t", "modern"), 0, false},
		{"other industry never scores", types.DimensionIndustry, "other", template("t", "professional", "tech", "business"), 0, false},
		{"style has no fallback", types.DimensionStyle, "creative", template("t", "modern"), 0, false},
		{"goal promotion", types.DimensionGoal, "promotion", template("t", "leadership"), 15, true},
		{"urgent non-premium", types.DimensionTimeframe, "urgent", template("t"), 10, true},
		{"urgent premium simple", types.DimensionTimeframe, "urgent", types.TemplateRecord{Name: "Simple", Category: "Basic", Premium: true}, 10, true},
		{"urgent premium", types.DimensionTimeframe, "urgent", types.TemplateRecord{Name: "Plain", Category: "Basic", Premium: true}, 0, false},
		{"planning premium", types.DimensionTimeframe, "planning", types.TemplateRecord{Name: "Plain", Category: "Basic", Premium: true}, 10, true},
		{"planning executive tag", types.DimensionTimeframe, "planning", template("t", "executive"), 10, true},
		{"planning free", types.DimensionTimeframe, "planning", template("t"), 0, false},
		{"soon never scores", types.DimensionTimeframe, "soon", template("t", "premium", "simple"), 0, false},
		{"updating never scores", types.DimensionTimeframe, "updating", template("t", "premium", "simple"), 0, false},
		{"unknown answer", types.DimensionStyle, "baroque", template("t", "modern"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := scoreDimension(tt.dimension, tt.answer, newProfile(&tt.template))
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.points, tr.points)
			if ok {
				assert.NotEmpty(t, tr.reason)
			}
		})
	}
}

func TestRubric_CoversEveryQuizOption(t *testing.T) {
	for _, q := range Questions() {
		_, known := rubric[q.ID]
		assert.True(t, known, "dimension %q has no rubric", q.ID)
	}
}
