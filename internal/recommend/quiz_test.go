package recommend

import (
	"testing"

	"github.com/jonathan/template-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_MatchDimensions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, len(types.Dimensions))
	for i, q := range qs {
		assert.Equal(t, types.Dimensions[i], q.ID)
		assert.NotEmpty(t, q.Title)
		assert.NotEmpty(t, q.Options)
	}
}

func TestQuestions_OptionsPassValidation(t *testing.T) {
	base := types.QuizAnswers{Experience: "mid", Industry: "tech", Style: "modern", Goal: "ats", Timeframe: "soon"}
	require.NoError(t, base.Validate())

	for _, q := range Questions() {
		for _, opt := range q.Options {
			answers := base
			answers.Set(q.ID, opt.Value)
			assert.NoError(t, answers.Validate(), "%s=%s", q.ID, opt.Value)
		}
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions()
	qs[0].Options[0].Label = "changed"

	assert.Equal(t, "Entry-Level / Recent Graduate", Questions()[0].Options[0].Label)
}

func TestQuestionFor(t *testing.T) {
	q, ok := QuestionFor(types.DimensionIndustry)
	require.True(t, ok)
	assert.Len(t, q.Options, 6)

	_, ok = QuestionFor("salary")
	assert.False(t, ok)
}
