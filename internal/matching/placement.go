package matching

import "github.com/jonathan/resume-matcher/internal/types"

// jobSectionOrder fixes the scan order for context lookup and placement
// tie-breaking.
var jobSectionOrder = []string{
	types.JobRequirements,
	types.JobPreferred,
	types.JobResponsibilities,
	types.JobAbout,
	types.JobBenefits,
}

// categoryEquivalence maps a job-side category to the resume category
// that should receive keywords mentioned there. Categories without a
// mapping default to skills.
var categoryEquivalence = map[string]string{
	types.JobRequirements:     types.CategorySkills,
	types.JobPreferred:        types.CategorySkills,
	types.JobResponsibilities: types.CategoryExperience,
}

// placeKeywords decides which resume section each missing keyword
// should be inserted into: the job category that mentions the keyword
// most often, mapped through the equivalence table.
func placeKeywords(missing []string, job *types.JobPosting) map[string]string {
	placement := make(map[string]string, len(missing))

	for _, keyword := range missing {
		best := ""
		bestCount := 0
		for _, category := range jobSectionOrder {
			count := 0
			for _, line := range job.Sections[category] {
				if containsKeyword(line, keyword) {
					count++
				}
			}
			if count > bestCount {
				best = category
				bestCount = count
			}
		}

		target, ok := categoryEquivalence[best]
		if !ok {
			target = types.CategorySkills
		}
		placement[keyword] = target
	}

	return placement
}
