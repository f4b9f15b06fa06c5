// Package matching extracts normalized vocabularies from a resume and a
// job posting and scores the keyword gap between them.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// maxListedKeywords bounds how many keywords a recommendation sentence
// lists before trailing off.
const maxListedKeywords = 10

// manyMissingThreshold triggers the prioritization recommendation.
const manyMissingThreshold = 15

// Analyze compares resume vocabulary against job vocabulary.
//
// The job vocabulary is restricted to the requirement lines plus the
// title; the resume vocabulary spans all sections. Matching and missing
// keyword lists come out case-normalized, deduplicated, and in
// first-occurrence order of the job text. An empty job vocabulary is a
// defined boundary: the score is 0 and no recommendations are emitted.
func Analyze(resume *types.SegmentedDocument, job *types.JobPosting) *types.GapReport {
	report := &types.GapReport{
		KeywordPlacement: map[string]string{},
	}

	jobText := job.RequirementText()
	if strings.TrimSpace(jobText) == "" {
		// Postings without recognized requirement sections fall back
		// to everything the segmenter found.
		var parts []string
		for _, category := range jobSectionOrder {
			parts = append(parts, job.Sections[category]...)
		}
		jobText = strings.Join(parts, " ")
	}
	jobVocab := ExtractKeywords(job.Title + " " + jobText)
	resumeVocab := KeywordSet(resume.Text())

	for _, keyword := range jobVocab {
		if _, ok := resumeVocab[keyword]; ok {
			report.MatchingKeywords = append(report.MatchingKeywords, keyword)
		} else {
			report.MissingKeywords = append(report.MissingKeywords, keyword)
		}
	}

	if len(jobVocab) > 0 {
		report.OverallScore = float64(len(report.MatchingKeywords)) / float64(len(jobVocab)) * 100
	}

	report.KeywordPlacement = placeKeywords(report.MissingKeywords, job)
	report.KeywordContext = keywordContexts(report.MissingKeywords, job)
	report.Recommendations = recommendations(report)

	return report
}

// keywordContexts records, for each missing keyword, the job lines that
// mention it. The rewriter uses these lines to pick the best bullet to
// augment.
func keywordContexts(missing []string, job *types.JobPosting) map[string][]string {
	if len(missing) == 0 {
		return nil
	}
	contexts := make(map[string][]string, len(missing))
	for _, keyword := range missing {
		for _, category := range jobSectionOrder {
			for _, line := range job.Sections[category] {
				if containsKeyword(line, keyword) {
					contexts[keyword] = append(contexts[keyword], line)
				}
			}
		}
	}
	return contexts
}

// recommendations renders one templated sentence per placement bucket,
// ordered by bucket size descending, behind a leading overall
// assessment keyed off the score band.
func recommendations(report *types.GapReport) []string {
	if len(report.MatchingKeywords) == 0 && len(report.MissingKeywords) == 0 {
		return nil
	}

	var recs []string
	switch {
	case report.OverallScore >= 80:
		recs = append(recs, "Your resume is a strong match. Focus on fine-tuning bullet points.")
	case report.OverallScore >= 50:
		recs = append(recs, "Moderate match. Add missing keywords to strengthen your application.")
	default:
		recs = append(recs, "Low match. Significant keyword gaps exist; consider tailoring your resume more closely to this role.")
	}

	buckets := map[string][]string{}
	for _, keyword := range report.MissingKeywords {
		target := report.KeywordPlacement[keyword]
		buckets[target] = append(buckets[target], keyword)
	}

	targets := make([]string, 0, len(buckets))
	for target := range buckets {
		targets = append(targets, target)
	}
	sort.Slice(targets, func(i, j int) bool {
		if len(buckets[targets[i]]) != len(buckets[targets[j]]) {
			return len(buckets[targets[i]]) > len(buckets[targets[j]])
		}
		return targets[i] < targets[j]
	})

	for _, target := range targets {
		keywords := buckets[target]
		listed := keywords
		if len(listed) > maxListedKeywords {
			listed = listed[:maxListedKeywords]
		}
		recs = append(recs, fmt.Sprintf("Add to your %s section: %s", target, strings.Join(listed, ", ")))
	}

	if len(report.MissingKeywords) > manyMissingThreshold {
		recs = append(recs, "Many keywords are missing. Prioritize the most frequently mentioned terms in the job description.")
	}

	return recs
}
