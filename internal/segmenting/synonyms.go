package segmenting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// headingSynonyms maps each resume category to the heading phrases that
// identify it. The table is compiled once at init and read-only after.
var headingSynonyms = map[string][]string{
	types.CategorySummary: {
		`summary`,
		`professional\s*summary`,
		`profile`,
		`objective`,
		`about\s*me`,
		`career\s*summary`,
		`executive\s*summary`,
	},
	types.CategoryExperience: {
		`experience`,
		`work\s*experience`,
		`professional\s*experience`,
		`employment\s*history`,
		`work\s*history`,
		`employment`,
	},
	types.CategoryEducation: {
		`education`,
		`academic\s*background`,
		`qualifications`,
	},
	types.CategorySkills: {
		`skills`,
		`technical\s*skills`,
		`core\s*competencies`,
		`competencies`,
		`areas?\s*of\s*expertise`,
		`proficiencies`,
	},
	types.CategoryCertifications: {
		`certifications?`,
		`licenses?\s*(?:&|and)?\s*certifications?`,
		`professional\s*certifications?`,
	},
	types.CategoryProjects: {
		`projects`,
		`personal\s*projects`,
		`key\s*projects`,
	},
	types.CategoryAwards: {
		`awards?`,
		`honors?`,
		`achievements?`,
	},
	types.CategoryLanguages: {
		`languages?`,
	},
	types.CategoryReferences: {
		`references?`,
	},
}

// compiledSynonyms holds one anchored, case-insensitive pattern per
// category. Categories are matched in a fixed order so classification
// is deterministic when phrases overlap.
var (
	synonymOrder = []string{
		types.CategorySummary,
		types.CategoryExperience,
		types.CategoryEducation,
		types.CategorySkills,
		types.CategoryCertifications,
		types.CategoryProjects,
		types.CategoryAwards,
		types.CategoryLanguages,
		types.CategoryReferences,
	}
	compiledSynonyms = compileSynonyms()
)

func compileSynonyms() map[string]*regexp.Regexp {
	compiled := make(map[string]*regexp.Regexp, len(headingSynonyms))
	for category, phrases := range headingSynonyms {
		joined := strings.Join(phrases, "|")
		compiled[category] = regexp.MustCompile(`(?i)^\s*(?:` + joined + `)\s*:?\s*$`)
	}
	return compiled
}

// ClassifyHeading maps heading text to a normalized resume category.
// Returns false when the text matches no known phrase.
func ClassifyHeading(text string) (string, bool) {
	stripped := strings.TrimSpace(text)
	if stripped == "" {
		return "", false
	}
	for _, category := range synonymOrder {
		if compiledSynonyms[category].MatchString(stripped) {
			return category, true
		}
	}
	return "", false
}
