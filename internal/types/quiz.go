package types

import (
	"github.com/go-playground/validator/v10"
)

// Quiz dimension identifiers, in the order the questions are asked.
const (
	DimensionExperience = "experience"
	DimensionIndustry   = "industry"
	DimensionStyle      = "style"
	DimensionGoal       = "goal"
	DimensionTimeframe  = "timeframe"
)

// Dimensions lists the quiz dimensions in question order.
var Dimensions = []string{
	DimensionExperience,
	DimensionIndustry,
	DimensionStyle,
	DimensionGoal,
	DimensionTimeframe,
}

// QuizAnswers holds one answer per quiz dimension.
type QuizAnswers struct {
	Experience string `json:"experience" mapstructure:"experience" validate:"required,oneof=entry mid senior executive"`
	Industry   string `json:"industry" mapstructure:"industry" validate:"required,oneof=tech business creative healthcare education other"`
	Style      string `json:"style" mapstructure:"style" validate:"required,oneof=modern professional minimal creative"`
	Goal       string `json:"goal" mapstructure:"goal" validate:"required,oneof=ats impression versatile promotion"`
	Timeframe  string `json:"timeframe" mapstructure:"timeframe" validate:"required,oneof=urgent soon planning updating"`
}

// Validate checks that every dimension is answered with a known value.
func (a *QuizAnswers) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

// Get returns the answer for a dimension, or "" for an unknown dimension.
func (a *QuizAnswers) Get(dimension string) string {
	switch dimension {
	case DimensionExperience:
		return a.Experience
	case DimensionIndustry:
		return a.Industry
	case DimensionStyle:
		return a.Style
	case DimensionGoal:
		return a.Goal
	case DimensionTimeframe:
		return a.Timeframe
	default:
		return ""
	}
}

// Set stores the answer for a dimension. Unknown dimensions are ignored.
func (a *QuizAnswers) Set(dimension, value string) {
	switch dimension {
	case DimensionExperience:
		a.Experience = value
	case DimensionIndustry:
		a.Industry = value
	case DimensionStyle:
		a.Style = value
	case DimensionGoal:
		a.Goal = value
	case DimensionTimeframe:
		a.Timeframe = value
	}
}
