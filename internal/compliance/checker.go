// Package compliance runs structural and content rules over a segmented
// resume and produces a severity-graded issue report with a 0-100 score.
package compliance

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// requiredSections must exist for the resume to pass ATS parsing.
var requiredSections = []string{
	types.CategoryExperience,
	types.CategoryEducation,
	types.CategorySkills,
}

// recommendedSections strengthen a resume but are optional.
var recommendedSections = []string{
	types.CategoryCertifications,
	types.CategoryProjects,
}

// headingRenames maps non-standard heading text (lowercased) to the
// ATS-standard replacement.
var headingRenames = map[string]string{
	"about me":            "Professional Summary",
	"objective":           "Professional Summary",
	"career summary":      "Professional Summary",
	"executive summary":   "Professional Summary",
	"profile":             "Professional Summary",
	"employment history":  "Work Experience",
	"work history":        "Work Experience",
	"employment":          "Work Experience",
	"core competencies":   "Skills",
	"areas of expertise":  "Skills",
	"proficiencies":       "Skills",
	"competencies":        "Skills",
	"academic background": "Education",
	"qualifications":      "Education",
}

var (
	emailPattern  = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)
	phonePattern  = regexp.MustCompile(`\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}`)
	metricPattern = regexp.MustCompile(`\d+[%+]?`)
)

// actionVerbs are the leading words that mark a strong experience bullet.
var actionVerbs = map[string]struct{}{
	"led": {}, "managed": {}, "developed": {}, "built": {}, "designed": {},
	"implemented": {}, "created": {}, "improved": {}, "reduced": {},
	"increased": {}, "delivered": {}, "launched": {}, "optimized": {},
	"established": {}, "achieved": {}, "drove": {}, "spearheaded": {},
	"orchestrated": {}, "streamlined": {}, "mentored": {},
}

// Check runs the full rule set with default configuration.
func Check(doc *types.SegmentedDocument) *types.ComplianceReport {
	return CheckWithConfig(doc, DefaultConfig())
}

// CheckWithConfig runs the full rule set. The checker is deterministic
// and has no side effects: issue ordering (severity descending, then
// category, then detection order) is stable for identical input.
func CheckWithConfig(doc *types.SegmentedDocument, cfg Config) *types.ComplianceReport {
	c := &checker{doc: doc, cfg: cfg}

	c.checkRequiredSections()
	c.checkHeadings()
	c.checkContactInfo()
	c.checkExperienceContent()
	c.checkSkillsContent()
	c.checkSummaryContent()

	return c.report()
}

type checker struct {
	doc    *types.SegmentedDocument
	cfg    Config
	issues []types.Issue

	status      map[string]string
	suggestions map[string]string
}

func (c *checker) add(severity, category, message, suggestion string) {
	c.issues = append(c.issues, types.Issue{
		Severity:   severity,
		Category:   category,
		Message:    message,
		Suggestion: suggestion,
	})
}

func (c *checker) report() *types.ComplianceReport {
	score := 100
	for _, issue := range c.issues {
		score -= c.cfg.Weights.penalty(issue.Severity)
	}
	if score < 0 {
		score = 0
	}

	ordered := make([]types.Issue, len(c.issues))
	copy(ordered, c.issues)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := types.SeverityRank(ordered[i].Severity), types.SeverityRank(ordered[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return ordered[i].Category < ordered[j].Category
	})

	if c.status == nil {
		c.status = map[string]string{}
	}
	if c.suggestions == nil {
		c.suggestions = map[string]string{}
	}
	return &types.ComplianceReport{
		Score:              score,
		Issues:             ordered,
		SectionStatus:      c.status,
		HeadingSuggestions: c.suggestions,
	}
}

func (c *checker) checkRequiredSections() {
	c.status = make(map[string]string, len(requiredSections)+len(recommendedSections))
	for _, category := range requiredSections {
		if c.doc.Has(category) {
			c.status[category] = types.StatusPresent
			continue
		}
		c.status[category] = types.StatusMissing
		c.add(types.SeverityError, types.IssueStructure,
			fmt.Sprintf("Missing required section: %s", category),
			fmt.Sprintf("Add a '%s' section to your resume.", titleCase(category)))
	}

	for _, category := range recommendedSections {
		if c.doc.Has(category) {
			c.status[category] = types.StatusPresent
			continue
		}
		c.status[category] = types.StatusOptionalMissing
		c.add(types.SeverityInfo, types.IssueStructure,
			fmt.Sprintf("Optional section not found: %s", category),
			fmt.Sprintf("Consider adding a '%s' section.", titleCase(category)))
	}
}

func (c *checker) checkHeadings() {
	c.suggestions = map[string]string{}
	for _, section := range c.doc.Sections {
		heading := strings.TrimSpace(section.Heading)
		if heading == "" {
			continue
		}
		canonical, ok := headingRenames[strings.ToLower(heading)]
		if !ok {
			continue
		}
		c.suggestions[heading] = canonical
		c.add(types.SeverityWarning, types.IssueHeading,
			fmt.Sprintf("Non-standard heading: '%s'", heading),
			fmt.Sprintf("Rename to '%s' for better ATS parsing.", canonical))
	}
}

func (c *checker) checkContactInfo() {
	header, _ := c.doc.Section(types.CategoryHeader)
	fullText := strings.ToLower(strings.Join(header.Content, " "))

	if len(header.Content) == 0 {
		c.add(types.SeverityError, types.IssueContent,
			"No contact information found at the top of the resume.",
			"Add your name, email, phone, and location at the top.")
		return
	}

	if !emailPattern.MatchString(fullText) {
		c.add(types.SeverityError, types.IssueContent,
			"No email address detected in contact section.",
			"Add a professional email address.")
	}
	if !phonePattern.MatchString(fullText) {
		c.add(types.SeverityError, types.IssueContent,
			"No phone number detected in contact section.",
			"Add a phone number.")
	}
}

func (c *checker) checkExperienceContent() {
	experience, ok := c.doc.Section(types.CategoryExperience)
	if !ok || len(experience.Content) == 0 {
		return
	}

	flagged := 0
	for _, line := range experience.Content {
		if metricPattern.MatchString(line) {
			continue
		}
		if flagged >= c.cfg.MaxMetricIssues {
			break
		}
		flagged++
		c.add(types.SeverityInfo, types.IssueContent,
			fmt.Sprintf("Bullet has no quantifiable metric: '%s'", truncate(line, 60)),
			"Add metrics (e.g., 'Increased sales by 25%', 'Managed team of 10').")
	}

	hasActionVerb := false
	for _, line := range experience.Content {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if _, ok := actionVerbs[strings.ToLower(fields[0])]; ok {
			hasActionVerb = true
			break
		}
	}
	if !hasActionVerb {
		c.add(types.SeverityInfo, types.IssueContent,
			"Bullet points may not start with strong action verbs.",
			"Start bullet points with action verbs like 'Led', 'Developed', 'Implemented'.")
	}
}

func (c *checker) checkSkillsContent() {
	skills, ok := c.doc.Section(types.CategorySkills)
	if !ok || len(skills.Content) == 0 {
		return
	}

	count := distinctSkillCount(skills.Content)
	if count < c.cfg.MinSkills {
		c.add(types.SeverityWarning, types.IssueContent,
			fmt.Sprintf("Only %d skills listed. Most competitive resumes have 8-15.", count),
			"Add more relevant technical and soft skills.")
	}
}

func (c *checker) checkSummaryContent() {
	summary, ok := c.doc.Section(types.CategorySummary)
	if !ok {
		return
	}
	if len(summary.Content) == 0 {
		c.add(types.SeverityWarning, types.IssueContent,
			"Summary section is present but empty.",
			"Write 30-60 words with key skills and experience highlights.")
		return
	}

	words := len(strings.Fields(strings.Join(summary.Content, " ")))
	switch {
	case words > c.cfg.SummaryMaxWords:
		c.add(types.SeverityInfo, types.IssueContent,
			fmt.Sprintf("Summary is quite long (%d words).", words),
			"Keep summary concise, ideally 30-60 words.")
	case words < c.cfg.SummaryMinWords:
		c.add(types.SeverityInfo, types.IssueContent,
			fmt.Sprintf("Summary is very short (%d words).", words),
			"Aim for 30-60 words with key skills and experience highlights.")
	}
}

// distinctSkillCount counts unique comma- or semicolon-separated terms.
func distinctSkillCount(content []string) int {
	seen := make(map[string]struct{})
	joined := strings.ReplaceAll(strings.Join(content, ","), ";", ",")
	for _, term := range strings.Split(joined, ",") {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			seen[term] = struct{}{}
		}
	}
	return len(seen)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
