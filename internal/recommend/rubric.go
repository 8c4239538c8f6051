package recommend

import (
	"strings"

	"github.com/jonathan/template-finder/internal/types"
)

// Maximum points per quiz dimension and bonus.
const (
	experiencePoints = 35
	industryPoints   = 30
	stylePoints      = 20
	goalPoints       = 15
	timeframePoints  = 10
	atsHighPoints    = 10
	atsGoodPoints    = 5
	popularPoints    = 5
)

// ATS score thresholds for the bonus points.
const (
	atsHighThreshold = 90.0
	atsGoodThreshold = 80.0
)

// maxPossibleScore is the sum of the per-dimension maxima, not the best
// score reachable for a given set of answers.
const maxPossibleScore = 125.0

const (
	matchCap           = 98
	maxReasons         = 3
	maxRecommendations = 6
)

const (
	fallbackReason = "Versatile professional template"
	popularReason  = "Popular among job seekers"
)

// premiumCondition lets a tier match on the template's premium flag.
type premiumCondition int

const (
	premiumIgnored premiumCondition = iota
	// premiumAbsent matches non-premium templates
	premiumAbsent
	// premiumPresent matches premium templates
	premiumPresent
)

// tier is one scoring level for a quiz answer. A tier matches when any of its
// conditions hold.
type tier struct {
	metadata []string
	category []string
	premium  premiumCondition
	points   int
	reason   string
}

// profile is the lowercased view of a template the rubric inspects.
type profile struct {
	metadata string
	category string
	premium  bool
}

func newProfile(t *types.TemplateRecord) profile {
	return profile{
		metadata: t.MetadataText(),
		category: strings.ToLower(t.Category),
		premium:  t.Premium,
	}
}

func (tr tier) matches(p profile) bool {
	switch tr.premium {
	case premiumAbsent:
		if !p.premium {
			return true
		}
	case premiumPresent:
		if p.premium {
			return true
		}
	}
	return containsAny(p.metadata, tr.metadata) || containsAny(p.category, tr.category)
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// rubric holds the ordered tiers for every answer of every dimension.
// The first matching tier wins. Answers without an entry score nothing.
var rubric = map[string]map[string][]tier{
	types.DimensionExperience: {
		"entry": {
			{metadata: []string{"fresher", "entry", "graduate", "student", "minimal"}, category: []string{"minimal"}, points: experiencePoints, reason: "Perfect for entry-level professionals"},
			{metadata: []string{"professional", "modern"}, points: 20, reason: "Clean professional design for beginners"},
		},
		"mid": {
			{metadata: []string{"professional", "modern", "ats"}, category: []string{"professional"}, points: experiencePoints, reason: "Ideal for mid-career professionals"},
			{metadata: []string{"executive", "senior"}, points: 15, reason: "Professional template with growth potential"},
		},
		"senior": {
			{metadata: []string{"executive", "senior", "leadership"}, category: []string{"executive"}, points: experiencePoints, reason: "Executive-level design for senior roles"},
			{metadata: []string{"professional", "modern"}, points: 25, reason: "Professional design for experienced candidates"},
		},
		"executive": {
			{metadata: []string{"executive", "c-level", "premium"}, category: []string{"executive"}, points: experiencePoints, reason: "Premium executive template"},
			{metadata: []string{"professional", "leadership"}, points: 20, reason: "Professional template for leadership roles"},
		},
	},
	types.DimensionIndustry: {
		"tech": {
			{metadata: []string{"tech", "software", "engineer", "it", "modern", "developer"}, points: industryPoints, reason: "Optimized for tech industry"},
			{metadata: []string{"professional", "ats"}, points: 15, reason: "Professional design for tech roles"},
		},
		"business": {
			{metadata: []string{"business", "finance", "consulting", "executive", "professional", "classic"}, points: industryPoints, reason: "Perfect for business professionals"},
		},
		"creative": {
			{metadata: []string{"creative", "design", "visual", "portfolio", "infographic"}, category: []string{"creative"}, points: industryPoints, reason: "Creative design that stands out"},
			{metadata: []string{"modern", "colorful"}, points: 20, reason: "Modern design with creative flair"},
		},
		"healthcare": {
			{metadata: []string{"healthcare", "medical", "professional", "ats", "clean", "classic"}, points: industryPoints, reason: "Professional healthcare template"},
		},
		"education": {
			{metadata: []string{"education", "academic", "teacher", "professional", "classic"}, points: industryPoints, reason: "Ideal for education sector"},
		},
	},
	types.DimensionStyle: {
		"modern": {
			{metadata: []string{"modern", "contemporary", "sleek", "visual"}, points: stylePoints, reason: "Modern and contemporary design"},
		},
		"professional": {
			{metadata: []string{"professional", "classic", "executive", "ats"}, points: stylePoints, reason: "Professional and polished"},
		},
		"minimal": {
			{metadata: []string{"minimal", "clean", "simple", "classic"}, points: stylePoints, reason: "Clean minimal design"},
		},
		"creative": {
			{metadata: []string{"creative", "unique", "visual", "colorful"}, points: stylePoints, reason: "Creative and eye-catching"},
		},
	},
	types.DimensionGoal: {
		"ats": {
			{metadata: []string{"ats", "optimized", "professional", "classic"}, points: goalPoints, reason: "ATS-optimized for applicant tracking systems"},
		},
		"impression": {
			{metadata: []string{"visual", "creative", "executive", "premium", "modern"}, points: goalPoints, reason: "Visually impressive design"},
		},
		"versatile": {
			{metadata: []string{"professional", "versatile", "modern", "ats"}, points: goalPoints, reason: "Versatile for any application"},
		},
		"promotion": {
			{metadata: []string{"executive", "professional", "leadership", "senior"}, points: goalPoints, reason: "Perfect for career advancement"},
		},
	},
	types.DimensionTimeframe: {
		"urgent": {
			{metadata: []string{"simple", "minimal"}, premium: premiumAbsent, points: timeframePoints, reason: "Quick to complete and customize"},
		},
		"planning": {
			{metadata: []string{"premium", "executive"}, premium: premiumPresent, points: timeframePoints, reason: "Premium quality worth the investment"},
		},
	},
}

// scoreDimension returns the first tier matched for the answer, if any.
func scoreDimension(dimension, answer string, p profile) (tier, bool) {
	for _, tr := range rubric[dimension][answer] {
		if tr.matches(p) {
			return tr, true
		}
	}
	return tier{}, false
}
