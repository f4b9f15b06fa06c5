// Package rewriting applies compliance fixes and keyword injection to a
// segmented resume. Update is a pure function: the input document is
// cloned, never mutated.
package rewriting

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/compliance"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxLoggedKeywords bounds how many keywords a change-log entry lists.
const maxLoggedKeywords = 10

// maxSummaryKeywords bounds the keyword clause appended to the summary.
const maxSummaryKeywords = 3

// Update rewrites the resume to better match the job. Steps run in a
// fixed order: heading renames, skills injection, experience bullet
// augmentation, then a summary clause for keywords still unplaced.
//
// KeywordsAdded is the exact subset of gap.MissingKeywords that landed
// in the document. A keyword targeting experience with no suitable
// bullet is skipped rather than fabricated into a new line.
func Update(resume *types.SegmentedDocument, gap *types.GapReport, report *types.ComplianceReport) *types.RewriteResult {
	return UpdateWithConfig(resume, gap, report, compliance.DefaultConfig())
}

// UpdateWithConfig is Update with an explicit compliance configuration,
// so the summary clause honors the same word budget the checker scored
// against.
func UpdateWithConfig(resume *types.SegmentedDocument, gap *types.GapReport, report *types.ComplianceReport, cfg compliance.Config) *types.RewriteResult {
	result := &types.RewriteResult{}
	doc := resume.Clone()

	if report != nil {
		fixHeadings(doc, report, result)
	}
	if gap != nil {
		updateSkills(doc, gap, result)
		updateExperience(doc, gap, result)
		updateSummary(doc, gap, result, cfg.SummaryMaxWords)
	}

	result.UpdatedSections = doc
	return result
}

// fixHeadings renames non-standard headings to their suggested
// canonical form.
func fixHeadings(doc *types.SegmentedDocument, report *types.ComplianceReport, result *types.RewriteResult) {
	for i, section := range doc.Sections {
		suggested, ok := report.HeadingSuggestions[section.Heading]
		if !ok {
			continue
		}
		doc.Sections[i].Heading = suggested
		result.ChangesMade = append(result.ChangesMade,
			fmt.Sprintf("Renamed heading %q to %q", section.Heading, suggested))
	}
}

// updateSkills appends missing keywords placed under skills as new
// content lines, creating the skills section when the resume has none.
func updateSkills(doc *types.SegmentedDocument, gap *types.GapReport, result *types.RewriteResult) {
	var toAdd []string
	for _, keyword := range gap.MissingKeywords {
		if gap.KeywordPlacement[keyword] == types.CategorySkills {
			toAdd = append(toAdd, keyword)
		}
	}
	if len(toAdd) == 0 {
		return
	}

	idx := -1
	for i, section := range doc.Sections {
		if section.Category == types.CategorySkills {
			idx = i
			break
		}
	}
	if idx == -1 {
		doc.Sections = append(doc.Sections, types.Section{
			Heading:  "Skills",
			Category: types.CategorySkills,
		})
		idx = len(doc.Sections) - 1
		result.ChangesMade = append(result.ChangesMade, "Added missing Skills section")
	}

	existing, _ := doc.Section(types.CategorySkills)
	existingText := strings.ToLower(strings.Join(existing.Content, " "))

	var added []string
	for _, keyword := range toAdd {
		if strings.Contains(existingText, keyword) {
			continue
		}
		doc.Sections[idx].Content = append(doc.Sections[idx].Content, formatSkill(keyword))
		added = append(added, keyword)
	}
	if len(added) == 0 {
		return
	}

	result.KeywordsAdded = append(result.KeywordsAdded, added...)
	result.ChangesMade = append(result.ChangesMade,
		fmt.Sprintf("Added %d skills: %s", len(added), joinCapped(added, maxLoggedKeywords)))
}

// updateExperience weaves keywords placed under experience into the
// most relevant existing bullet. Relevance is token overlap between the
// bullet and the keyword's job-side context lines; a keyword with no
// overlapping bullet is skipped.
func updateExperience(doc *types.SegmentedDocument, gap *types.GapReport, result *types.RewriteResult) {
	var keywords []string
	for _, keyword := range gap.MissingKeywords {
		if gap.KeywordPlacement[keyword] == types.CategoryExperience {
			keywords = append(keywords, keyword)
		}
	}
	if len(keywords) == 0 {
		return
	}

	idx := -1
	for i, section := range doc.Sections {
		if section.Category == types.CategoryExperience && len(section.Content) > 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	content := doc.Sections[idx].Content
	augmented := make(map[int]bool, len(content))

	var used []string
	for _, keyword := range keywords {
		context := contextTokens(keyword, gap.KeywordContext)
		best := -1
		bestScore := 0
		for i, line := range content {
			if augmented[i] || !isBullet(line) {
				continue
			}
			if strings.Contains(strings.ToLower(line), keyword) {
				continue
			}
			score := overlap(tokenize(line), context)
			if score > bestScore {
				best = i
				bestScore = score
			}
		}
		if best == -1 {
			continue
		}
		content[best] = enhanceBullet(content[best], keyword)
		augmented[best] = true
		used = append(used, keyword)
	}

	doc.Sections[idx].Content = content
	if len(used) == 0 {
		return
	}

	result.KeywordsAdded = append(result.KeywordsAdded, used...)
	result.ChangesMade = append(result.ChangesMade,
		fmt.Sprintf("Enhanced %d experience bullets with keywords: %s", len(used), joinCapped(used, maxLoggedKeywords)))
}

// updateSummary appends a short clause listing keywords still missing
// after the earlier steps, bounded so the summary stays within the
// given word budget.
func updateSummary(doc *types.SegmentedDocument, gap *types.GapReport, result *types.RewriteResult, budget int) {
	idx := -1
	for i, section := range doc.Sections {
		if section.Category == types.CategorySummary && len(section.Content) > 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	placed := make(map[string]bool, len(result.KeywordsAdded))
	for _, keyword := range result.KeywordsAdded {
		placed[keyword] = true
	}

	content := doc.Sections[idx].Content
	summaryText := strings.ToLower(strings.Join(content, " "))

	var keywords []string
	for _, keyword := range gap.MissingKeywords {
		if placed[keyword] || strings.Contains(summaryText, keyword) {
			continue
		}
		keywords = append(keywords, keyword)
		if len(keywords) == maxSummaryKeywords {
			break
		}
	}
	if len(keywords) == 0 {
		return
	}

	formatted := make([]string, len(keywords))
	for i, keyword := range keywords {
		formatted[i] = formatSkill(keyword)
	}
	clause := fmt.Sprintf(" Skilled in %s.", strings.Join(formatted, ", "))

	if wordCount(strings.Join(content, " "))+wordCount(clause) > budget {
		return
	}

	content[len(content)-1] = strings.TrimRight(content[len(content)-1], ".") + "." + clause
	doc.Sections[idx].Content = content

	result.KeywordsAdded = append(result.KeywordsAdded, keywords...)
	result.ChangesMade = append(result.ChangesMade,
		fmt.Sprintf("Added key terms to summary: %s", strings.Join(keywords, ", ")))
}

// enhanceBullet appends the keyword as a trailing clause.
func enhanceBullet(bullet, keyword string) string {
	return strings.TrimRight(bullet, ".") + ", utilizing " + formatSkill(keyword) + "."
}

// formatSkill renders a normalized keyword for display. Short alphabetic
// terms are treated as acronyms; terms carrying special characters
// (c++, node.js) or spaces are kept verbatim.
func formatSkill(skill string) string {
	if !isAlpha(skill) {
		return skill
	}
	if len(skill) <= 3 {
		return strings.ToUpper(skill)
	}
	return titleWords(skill)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func titleWords(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

func joinCapped(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
