package jobs

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// sectionPhrases maps each job-posting category to the heading phrases
// that identify it in free text. Compiled once, read-only after init.
var sectionPhrases = map[string][]string{
	types.JobResponsibilities: {
		`responsibilities`,
		`what\s*you(?:'ll|.will)\s*do`,
		`role\s*(?:description|overview)`,
		`job\s*duties`,
		`key\s*responsibilities`,
		`about\s*the\s*role`,
	},
	types.JobRequirements: {
		`requirements`,
		`qualifications`,
		`what\s*(?:we(?:'re)?\s*looking\s*for|you\s*(?:need|bring))`,
		`minimum\s*qualifications`,
		`basic\s*qualifications`,
		`must\s*have`,
		`required\s*(?:skills|experience|qualifications)`,
	},
	types.JobPreferred: {
		`preferred\s*(?:qualifications|skills|experience)`,
		`nice\s*to\s*have`,
		`bonus\s*(?:points|qualifications)?`,
		`desired\s*(?:skills|experience|qualifications)`,
		`additional\s*qualifications`,
	},
	types.JobBenefits: {
		`benefits`,
		`perks`,
		`what\s*we\s*offer`,
		`compensation`,
	},
	types.JobAbout: {
		`about\s*(?:us|the\s*company|the\s*team)`,
		`who\s*we\s*are`,
		`company\s*(?:overview|description)`,
	},
}

var (
	sectionOrder = []string{
		types.JobResponsibilities,
		types.JobRequirements,
		types.JobPreferred,
		types.JobBenefits,
		types.JobAbout,
	}
	compiledPhrases = compilePhrases()
)

func compilePhrases() map[string]*regexp.Regexp {
	compiled := make(map[string]*regexp.Regexp, len(sectionPhrases))
	for category, phrases := range sectionPhrases {
		joined := strings.Join(phrases, "|")
		compiled[category] = regexp.MustCompile(`(?i)^\s*(?:` + joined + `)\s*:?\s*$`)
	}
	return compiled
}

// classifyLine maps a line that looks like a heading (ends with ":" or
// matches a known phrase outright) to a job-posting category.
func classifyLine(line string) (string, bool) {
	stripped := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	if stripped == "" {
		return "", false
	}
	for _, category := range sectionOrder {
		if compiledPhrases[category].MatchString(stripped) {
			return category, true
		}
	}
	return "", false
}
