package compliance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func completeResume() *types.SegmentedDocument {
	return &types.SegmentedDocument{
		Sections: []types.Section{
			{Category: types.CategoryHeader, Content: []string{
				"Jane Doe",
				"jane@example.com | 555-123-4567",
			}},
			{Heading: "Summary", Category: types.CategorySummary, Content: []string{
				"Backend engineer with six years of experience building and operating " +
					"distributed systems, data pipelines, and developer tooling at scale.",
			}},
			{Heading: "Experience", Category: types.CategoryExperience, Content: []string{
				"Led migration of billing platform, cutting costs by 30%",
				"Built data pipelines processing 2M events per day",
			}},
			{Heading: "Education", Category: types.CategoryEducation, Content: []string{
				"B.S. Computer Science, State University",
			}},
			{Heading: "Skills", Category: types.CategorySkills, Content: []string{
				"Python, Go, Docker, Kubernetes, PostgreSQL, Terraform",
			}},
		},
	}
}

func TestCheck_CompleteResume_HighScore(t *testing.T) {
	report := Check(completeResume())

	assert.GreaterOrEqual(t, report.Score, 90)
	assert.Equal(t, types.StatusPresent, report.SectionStatus[types.CategoryExperience])
	assert.Equal(t, types.StatusPresent, report.SectionStatus[types.CategoryEducation])
	assert.Equal(t, types.StatusPresent, report.SectionStatus[types.CategorySkills])

	for _, issue := range report.Issues {
		assert.NotEqual(t, types.SeverityError, issue.Severity,
			"complete resume should have no error-severity issues: %s", issue.Message)
	}
}

func TestCheck_MissingEducation(t *testing.T) {
	doc := completeResume()
	var sections []types.Section
	for _, s := range doc.Sections {
		if s.Category != types.CategoryEducation {
			sections = append(sections, s)
		}
	}
	doc.Sections = sections

	report := Check(doc)

	assert.Equal(t, types.StatusMissing, report.SectionStatus[types.CategoryEducation])

	var structureErrors []types.Issue
	for _, issue := range report.Issues {
		if issue.Severity == types.SeverityError && issue.Category == types.IssueStructure {
			structureErrors = append(structureErrors, issue)
		}
	}
	require.Len(t, structureErrors, 1)
	assert.Contains(t, structureErrors[0].Message, "education")
}

func TestCheck_RecommendedSectionsOptionalMissing(t *testing.T) {
	report := Check(completeResume())

	assert.Equal(t, types.StatusOptionalMissing, report.SectionStatus[types.CategoryCertifications])
	assert.Equal(t, types.StatusOptionalMissing, report.SectionStatus[types.CategoryProjects])
}

func TestCheck_NonStandardHeading(t *testing.T) {
	doc := completeResume()
	doc.Sections[1].Heading = "About Me"

	report := Check(doc)

	assert.Equal(t, "Professional Summary", report.HeadingSuggestions["About Me"])

	found := false
	for _, issue := range report.Issues {
		if issue.Category == types.IssueHeading {
			found = true
			assert.Equal(t, types.SeverityWarning, issue.Severity)
			assert.Contains(t, issue.Message, "About Me")
		}
	}
	assert.True(t, found, "expected a heading issue for 'About Me'")
}

func TestCheck_MissingContactInfo(t *testing.T) {
	doc := completeResume()
	doc.Sections[0].Content = []string{"Jane Doe"}

	report := Check(doc)

	var contactErrors []string
	for _, issue := range report.Issues {
		if issue.Severity == types.SeverityError && issue.Category == types.IssueContent {
			contactErrors = append(contactErrors, issue.Message)
		}
	}
	require.Len(t, contactErrors, 2)
	assert.Contains(t, strings.Join(contactErrors, " "), "email")
	assert.Contains(t, strings.Join(contactErrors, " "), "phone")
}

func TestCheck_EmptyHeader(t *testing.T) {
	doc := completeResume()
	doc.Sections[0].Content = nil

	report := Check(doc)

	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue.Message, "No contact information") {
			found = true
			assert.Equal(t, types.SeverityError, issue.Severity)
		}
	}
	assert.True(t, found)
}

func TestCheck_MetricIssuesCapped(t *testing.T) {
	doc := completeResume()
	var bullets []string
	for i := 0; i < 20; i++ {
		bullets = append(bullets, "Led work on internal tools without measurable outcomes")
	}
	doc.Sections[2].Content = bullets

	cfg := DefaultConfig()
	report := CheckWithConfig(doc, cfg)

	metricIssues := 0
	for _, issue := range report.Issues {
		if strings.Contains(issue.Message, "no quantifiable metric") {
			metricIssues++
		}
	}
	assert.Equal(t, cfg.MaxMetricIssues, metricIssues)
}

func TestCheck_MissingActionVerbs(t *testing.T) {
	doc := completeResume()
	doc.Sections[2].Content = []string{
		"Was responsible for the billing platform with 30% savings",
		"Worked on data pipelines processing 2M events",
	}

	report := Check(doc)

	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue.Message, "action verbs") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheck_TooFewSkills(t *testing.T) {
	doc := completeResume()
	doc.Sections[4].Content = []string{"Python, Go"}

	report := Check(doc)

	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue.Message, "2 skills listed") {
			found = true
			assert.Equal(t, types.SeverityWarning, issue.Severity)
		}
	}
	assert.True(t, found)
}

func TestCheck_SummaryLengthBounds(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		doc := completeResume()
		doc.Sections[1].Content = []string{"Engineer with experience."}

		report := Check(doc)
		assertHasIssueContaining(t, report, "very short")
	})

	t.Run("too long", func(t *testing.T) {
		doc := completeResume()
		doc.Sections[1].Content = []string{strings.Repeat("word ", 100)}

		report := Check(doc)
		assertHasIssueContaining(t, report, "quite long")
	})

	t.Run("empty", func(t *testing.T) {
		doc := completeResume()
		doc.Sections[1].Content = nil

		report := Check(doc)
		assertHasIssueContaining(t, report, "present but empty")
	})
}

func assertHasIssueContaining(t *testing.T, report *types.ComplianceReport, fragment string) {
	t.Helper()
	for _, issue := range report.Issues {
		if strings.Contains(issue.Message, fragment) {
			return
		}
	}
	t.Errorf("expected an issue containing %q, got %v", fragment, report.Issues)
}

func TestCheck_ScoreNeverNegative(t *testing.T) {
	report := Check(&types.SegmentedDocument{})
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
}

func TestCheck_IssuesOrderedBySeverity(t *testing.T) {
	report := Check(&types.SegmentedDocument{
		Sections: []types.Section{
			{Heading: "About Me", Category: types.CategorySummary, Content: []string{"Engineer."}},
		},
	})

	last := -1
	for _, issue := range report.Issues {
		rank := types.SeverityRank(issue.Severity)
		assert.GreaterOrEqual(t, rank, last, "issues must be ordered most severe first")
		if rank > last {
			last = rank
		}
	}
}

func TestCheck_Deterministic(t *testing.T) {
	doc := completeResume()
	first := Check(doc)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Check(doc))
	}
}

func TestCheck_ScoreMonotonicUnderDegradation(t *testing.T) {
	full := completeResume()
	baseline := Check(full).Score

	degraded := completeResume()
	var sections []types.Section
	for _, s := range degraded.Sections {
		if s.Category != types.CategorySkills {
			sections = append(sections, s)
		}
	}
	degraded.Sections = sections
	assert.LessOrEqual(t, Check(degraded).Score, baseline,
		"removing a required section must never raise the score")

	degraded.Sections[0].Content = []string{"Jane Doe"}
	assert.LessOrEqual(t, Check(degraded).Score, baseline)
}

func TestCheckWithConfig_CustomWeights(t *testing.T) {
	doc := completeResume()
	var sections []types.Section
	for _, s := range doc.Sections {
		if s.Category != types.CategoryEducation {
			sections = append(sections, s)
		}
	}
	doc.Sections = sections

	heavy := DefaultConfig()
	heavy.Weights.Error = 50

	light := DefaultConfig()
	light.Weights.Error = 1

	heavyReport := CheckWithConfig(doc, heavy)
	lightReport := CheckWithConfig(doc, light)

	assert.Less(t, heavyReport.Score, lightReport.Score)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.Weights.Warning = -5
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.MinSkills = 0
	assert.Error(t, bad.Validate())
}

func TestDistinctSkillCount(t *testing.T) {
	assert.Equal(t, 3, distinctSkillCount([]string{"Python, Go; Docker"}))
	assert.Equal(t, 2, distinctSkillCount([]string{"Python", "python", "Go"}))
	assert.Equal(t, 0, distinctSkillCount(nil))
}
