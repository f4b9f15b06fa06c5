package compliance

import "github.com/go-playground/validator/v10"

// Weights are the per-severity score penalties. They are configuration,
// not rule logic: tuning the scoring policy never touches the rules.
type Weights struct {
	Error   int `json:"error" validate:"gte=0"`
	Warning int `json:"warning" validate:"gte=0"`
	Info    int `json:"info" validate:"gte=0"`
}

// Config carries the tunable thresholds for the rule set.
type Config struct {
	Weights Weights `json:"weights"`

	// MinSkills is the minimum distinct-term count expected in the
	// skills section.
	MinSkills int `json:"min_skills" validate:"gte=1"`
	// SummaryMaxWords is the word budget for the summary section.
	SummaryMaxWords int `json:"summary_max_words" validate:"gte=1"`
	// SummaryMinWords is the word count below which the summary is
	// flagged as too short.
	SummaryMinWords int `json:"summary_min_words" validate:"gte=0"`
	// MaxMetricIssues caps the per-bullet metric findings so a long
	// experience section cannot flood the report.
	MaxMetricIssues int `json:"max_metric_issues" validate:"gte=1"`
}

// DefaultWeights returns the standard severity penalties.
func DefaultWeights() Weights {
	return Weights{Error: 15, Warning: 5, Info: 3}
}

// DefaultConfig returns the standard rule thresholds.
func DefaultConfig() Config {
	return Config{
		Weights:         DefaultWeights(),
		MinSkills:       5,
		SummaryMaxWords: 80,
		SummaryMinWords: 15,
		MaxMetricIssues: 5,
	}
}

var validate = validator.New()

// Validate rejects negative penalties and out-of-range thresholds.
func (c Config) Validate() error {
	return validate.Struct(c)
}

func (w Weights) penalty(severity string) int {
	switch severity {
	case "error":
		return w.Error
	case "warning":
		return w.Warning
	default:
		return w.Info
	}
}
