// Package jobs extracts structured sections from free-text and HTML job postings.
package jobs

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// maxTitleLen bounds the first-line title guess; longer first lines are
// prose, not titles.
const maxTitleLen = 100

var bulletMarker = regexp.MustCompile(`^[\x{2022}\x{2023}\x{25E6}\x{2043}\x{2219}\-\*]\s*`)

// FromText parses a job posting from raw text.
//
// Lines matching known section phrases open a new bucket; everything
// else accumulates into the most recently opened bucket. When no
// heading is recognized anywhere, the whole text becomes a single
// "about" bucket and AllRequirements stays empty.
func FromText(text string) *types.JobPosting {
	posting := &types.JobPosting{
		RawText:  text,
		Sections: map[string][]string{},
	}

	lines := splitLines(text)
	current := ""

	for _, line := range lines {
		if category, ok := classifyLine(line); ok {
			current = category
			if _, exists := posting.Sections[current]; !exists {
				posting.Sections[current] = []string{}
			}
			continue
		}
		if current == "" {
			continue
		}
		cleaned := bulletMarker.ReplaceAllString(line, "")
		if cleaned != "" {
			posting.Sections[current] = append(posting.Sections[current], cleaned)
		}
	}

	if len(posting.Sections) == 0 {
		posting.Sections[types.JobAbout] = lines
	} else {
		posting.AllRequirements = collectRequirements(posting.Sections)
	}

	if len(lines) > 0 {
		first := lines[0]
		if _, ok := classifyLine(first); !ok && len(first) < maxTitleLen {
			posting.Title = first
		}
	}

	return posting
}

// collectRequirements builds the deduplicated union of the requirements
// and preferred sections, requirements first.
func collectRequirements(sections map[string][]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, category := range []string{types.JobRequirements, types.JobPreferred} {
		for _, line := range sections[category] {
			key := strings.ToLower(strings.TrimSpace(line))
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, line)
		}
	}
	return out
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
