package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

const sampleJobText = `Senior Backend Engineer

About the Role:
Join our platform team building distributed systems.

Requirements:
- 5+ years of Go experience
- Experience with Kubernetes
- Strong SQL skills

Nice to Have:
- Experience with Kubernetes
- Terraform

Benefits:
- Remote friendly
- Health insurance
`

func TestFromText_SectionsAndTitle(t *testing.T) {
	posting := FromText(sampleJobText)

	assert.Equal(t, "Senior Backend Engineer", posting.Title)
	assert.Equal(t, sampleJobText, posting.RawText)

	require.Contains(t, posting.Sections, types.JobResponsibilities)
	assert.Equal(t, []string{"Join our platform team building distributed systems."},
		posting.Sections[types.JobResponsibilities])

	require.Contains(t, posting.Sections, types.JobRequirements)
	assert.Equal(t, []string{
		"5+ years of Go experience",
		"Experience with Kubernetes",
		"Strong SQL skills",
	}, posting.Sections[types.JobRequirements], "bullet markers are stripped")

	require.Contains(t, posting.Sections, types.JobPreferred)
	assert.Equal(t, []string{"Experience with Kubernetes", "Terraform"},
		posting.Sections[types.JobPreferred])

	require.Contains(t, posting.Sections, types.JobBenefits)
}

func TestFromText_AllRequirements_DedupesAcrossSections(t *testing.T) {
	posting := FromText(sampleJobText)

	assert.Equal(t, []string{
		"5+ years of Go experience",
		"Experience with Kubernetes",
		"Strong SQL skills",
		"Terraform",
	}, posting.AllRequirements, "requirements come first, duplicates in preferred are dropped")
}

func TestFromText_NoHeadings_SingleAboutBucket(t *testing.T) {
	text := "We are hiring a software engineer.\nYou will build things.\nApply today."
	posting := FromText(text)

	require.Len(t, posting.Sections, 1)
	assert.Equal(t, []string{
		"We are hiring a software engineer.",
		"You will build things.",
		"Apply today.",
	}, posting.Sections[types.JobAbout])
	assert.Empty(t, posting.AllRequirements)
}

func TestFromText_FirstLineHeadingIsNotTitle(t *testing.T) {
	posting := FromText("Requirements:\n- Go\n- SQL")
	assert.Empty(t, posting.Title)
	assert.Equal(t, []string{"Go", "SQL"}, posting.Sections[types.JobRequirements])
}

func TestFromText_LongFirstLineIsNotTitle(t *testing.T) {
	long := "We are a fast growing startup looking for talented engineers to join our distributed systems platform team this quarter"
	posting := FromText(long + "\nRequirements:\n- Go")
	assert.Empty(t, posting.Title)
}

func TestFromText_HeadingSynonyms(t *testing.T) {
	tests := []struct {
		line     string
		category string
	}{
		{"What You'll Do", types.JobResponsibilities},
		{"Key Responsibilities:", types.JobResponsibilities},
		{"Minimum Qualifications", types.JobRequirements},
		{"What We're Looking For", types.JobRequirements},
		{"Must Have:", types.JobRequirements},
		{"Preferred Qualifications", types.JobPreferred},
		{"Nice to Have", types.JobPreferred},
		{"What We Offer", types.JobBenefits},
		{"About Us", types.JobAbout},
		{"Who We Are", types.JobAbout},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			category, ok := classifyLine(tt.line)
			require.True(t, ok, "expected %q to classify as a heading", tt.line)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestClassifyLine_NonHeadings(t *testing.T) {
	for _, line := range []string{
		"",
		"We have many requirements for this role",
		"- 5+ years of Go experience",
	} {
		_, ok := classifyLine(line)
		assert.False(t, ok, "%q should not classify as a heading", line)
	}
}

func TestFromHTML_ContainerAndTitle(t *testing.T) {
	rawHTML := `<html><head><title>Jobs at Acme</title></head><body>
	<nav>Home | Careers</nav>
	<h1>Staff Platform Engineer</h1>
	<div class="job-description">
		<p>Senior Backend Engineer</p>
		<h2>Requirements</h2>
		<ul>
			<li>Go expertise</li>
			<li>Kubernetes in production</li>
		</ul>
		<h2>Benefits</h2>
		<p>Remote friendly</p>
	</div>
	<footer>Copyright Acme</footer>
	</body></html>`

	posting, err := FromHTML(rawHTML)
	require.NoError(t, err)

	assert.Equal(t, "Staff Platform Engineer", posting.Title, "h1 text overrides the first-line guess")
	assert.Equal(t, []string{"Go expertise", "Kubernetes in production"},
		posting.Sections[types.JobRequirements])
	assert.Equal(t, []string{"Remote friendly"}, posting.Sections[types.JobBenefits])

	for _, lines := range posting.Sections {
		for _, line := range lines {
			assert.NotContains(t, line, "Careers", "nav content should be stripped")
			assert.NotContains(t, line, "Copyright", "footer content should be stripped")
		}
	}
}

func TestFromHTML_FallsBackToBody(t *testing.T) {
	rawHTML := `<html><body>
	<p>Backend Engineer</p>
	<p>Requirements:</p>
	<p>Go and SQL</p>
	</body></html>`

	posting, err := FromHTML(rawHTML)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go and SQL"}, posting.Sections[types.JobRequirements])
}
