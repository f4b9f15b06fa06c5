package types

// JobPosting is the structured form of a job description. Sections maps
// a job-side category to its ordered content lines. AllRequirements is
// the deduplicated union of the requirements and preferred sections, in
// that order.
type JobPosting struct {
	Title           string              `json:"title"`
	Company         string              `json:"company"`
	RawText         string              `json:"raw_text"`
	Sections        map[string][]string `json:"sections"`
	AllRequirements []string            `json:"all_requirements"`
}

// RequirementText joins all requirement lines into one string for
// vocabulary extraction.
func (j *JobPosting) RequirementText() string {
	out := ""
	for i, line := range j.AllRequirements {
		if i > 0 {
			out += " "
		}
		out += line
	}
	return out
}
