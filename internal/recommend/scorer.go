// Package recommend scores catalog templates against answers to the template quiz.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/jonathan/template-finder/internal/types"
)

// ScoreRecommendations scores every template against the answers and returns
// the best six, highest score first. Equal scores keep catalog order.
// Answers are not validated here; unknown values simply score nothing.
func ScoreRecommendations(templates []types.TemplateRecord, answers types.QuizAnswers) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(templates))
	for i := range templates {
		recs = append(recs, scoreTemplate(&templates[i], &answers))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func scoreTemplate(t *types.TemplateRecord, answers *types.QuizAnswers) types.Recommendation {
	p := newProfile(t)
	score := 0
	reasons := make([]string, 0, maxReasons)

	for _, dimension := range types.Dimensions {
		if tr, ok := scoreDimension(dimension, answers.Get(dimension), p); ok {
			score += tr.points
			reasons = append(reasons, tr.reason)
		}
	}

	switch {
	case t.HasATSScoreAtLeast(atsHighThreshold):
		score += atsHighPoints
		reasons = append(reasons, fmt.Sprintf("High ATS score: %s/100", strconv.FormatFloat(*t.ATSScore, 'f', -1, 64)))
	case t.HasATSScoreAtLeast(atsGoodThreshold):
		score += atsGoodPoints
	}

	if t.Popular || containsAny(p.metadata, []string{"popular", "trending"}) {
		score += popularPoints
		reasons = append(reasons, popularReason)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fallbackReason)
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return types.Recommendation{
		TemplateRecord:  *t,
		Score:           score,
		Reasons:         reasons,
		MatchPercentage: matchPercentage(score),
		BuilderURL:      t.BuilderURL(),
	}
}

// matchPercentage normalizes a score against maxPossibleScore, capped at matchCap.
func matchPercentage(score int) int {
	pct := int(math.Floor(float64(score)/maxPossibleScore*100 + 0.5))
	return min(pct, matchCap)
}
