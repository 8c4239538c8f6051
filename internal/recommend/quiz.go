package recommend

import "github.com/jonathan/template-finder/internal/types"

// Option is one selectable answer to a quiz question.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Hint        string `json:"hint"`
}

// Question is a single quiz step. ID is the QuizAnswers dimension it fills.
type Question struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Tip      string   `json:"tip"`
	Options  []Option `json:"options"`
}

var questions = []Question{
	{
		ID:       types.DimensionExperience,
		Title:    "What's your experience level?",
		Subtitle: "This helps us recommend the right template structure",
		Tip:      "Entry-level candidates should emphasize education and skills, while experienced professionals should lead with achievements.",
		Options: []Option{
			{Value: "entry", Label: "Entry-Level / Recent Graduate", Description: "Fresh start, building your career", Hint: "We'll show templates that highlight education & potential"},
			{Value: "mid", Label: "Mid-Career Professional", Description: "3-8 years of solid experience", Hint: "Templates that balance experience & achievements"},
			{Value: "senior", Label: "Senior / Leadership", Description: "9+ years, leading teams or projects", Hint: "Executive templates emphasizing leadership impact"},
			{Value: "executive", Label: "C-Level / Executive", Description: "Executive leadership roles", Hint: "Premium executive templates with strategic focus"},
		},
	},
	{
		ID:       types.DimensionIndustry,
		Title:    "Which industry best describes your field?",
		Subtitle: "Different industries have different expectations",
		Tip:      "Traditional industries prefer conservative designs, while creative fields allow more personality.",
		Options: []Option{
			{Value: "tech", Label: "Technology & IT", Description: "Software, engineering, data science", Hint: "Modern, clean templates with technical focus"},
			{Value: "business", Label: "Business & Finance", Description: "Finance, consulting, management", Hint: "Professional templates with conservative design"},
			{Value: "creative", Label: "Creative & Design", Description: "Design, marketing, media", Hint: "Creative templates that showcase personality"},
			{Value: "healthcare", Label: "Healthcare & Medical", Description: "Medical, nursing, healthcare", Hint: "Clean, trustworthy professional templates"},
			{Value: "education", Label: "Education & Academia", Description: "Teaching, research, education", Hint: "Academic templates with publication focus"},
			{Value: "other", Label: "Other / General", Description: "Everything else", Hint: "Versatile templates for any field"},
		},
	},
	{
		ID:       types.DimensionStyle,
		Title:    "What design style appeals to you?",
		Subtitle: "Your resume should reflect your personality",
		Tip:      "Your template style should match your industry norms while standing out enough to be memorable.",
		Options: []Option{
			{Value: "modern", Label: "Modern & Bold", Description: "Stand out with contemporary design", Hint: "Eye-catching templates with modern elements"},
			{Value: "professional", Label: "Professional & Traditional", Description: "Classic, trusted, time-tested", Hint: "Traditional templates that work everywhere"},
			{Value: "minimal", Label: "Minimal & Clean", Description: "Less is more, focus on content", Hint: "Minimal templates emphasizing your achievements"},
			{Value: "creative", Label: "Creative & Unique", Description: "Show your creative side", Hint: "Unique templates that express creativity"},
		},
	},
	{
		ID:       types.DimensionGoal,
		Title:    "What's your primary goal?",
		Subtitle: "Let's optimize for what matters most to you",
		Tip:      "Your goal determines template priorities - ATS optimization for applications, or visual impact for networking.",
		Options: []Option{
			{Value: "ats", Label: "Pass ATS Systems", Description: "Applying to large companies online", Hint: "ATS-optimized templates with high scan rates"},
			{Value: "impression", Label: "Make Strong First Impression", Description: "Wow recruiters & hiring managers", Hint: "Visually striking templates that stand out"},
			{Value: "versatile", Label: "Work for Any Situation", Description: "One resume for all purposes", Hint: "Balanced templates good for everything"},
			{Value: "promotion", Label: "Internal Promotion", Description: "Moving up in current company", Hint: "Professional templates highlighting growth"},
		},
	},
	{
		ID:       types.DimensionTimeframe,
		Title:    "When do you need your resume?",
		Subtitle: "This helps us prioritize the right features",
		Tip:      "Quick applications benefit from templates that are easy to fill. Career overhauls allow more customization time.",
		Options: []Option{
			{Value: "urgent", Label: "ASAP (Today/Tomorrow)", Description: "Need to apply right away", Hint: "Quick-start templates, easy to complete"},
			{Value: "soon", Label: "This Week", Description: "Actively applying soon", Hint: "Templates with good guidance & structure"},
			{Value: "planning", Label: "Planning Ahead", Description: "Preparing for future search", Hint: "Premium templates worth customizing"},
			{Value: "updating", Label: "Just Updating", Description: "Refreshing existing resume", Hint: "Modern updates to classic styles"},
		},
	},
}

// Questions returns the quiz questions in the order they are asked.
// The returned slice is a copy.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]Option(nil), q.Options...)
		out[i] = q
	}
	return out
}

// QuestionFor returns the question for a dimension.
func QuestionFor(dimension string) (Question, bool) {
	for _, q := range Questions() {
		if q.ID == dimension {
			return q, true
		}
	}
	return Question{}, false
}
