package types

// Issue severities, ordered by remediation priority.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Issue categories.
const (
	IssueStructure  = "structure"
	IssueHeading    = "heading"
	IssueContent    = "content"
	IssueFormatting = "formatting"
)

// Section presence markers used in ComplianceReport.SectionStatus.
const (
	StatusPresent         = "present"
	StatusMissing         = "missing"
	StatusOptionalMissing = "optional-missing"
)

// Issue is a single compliance finding. Issues are pure values with no
// state beyond the report that carries them.
type Issue struct {
	Severity   string `json:"severity"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// SeverityRank maps a severity to its sort rank (lower sorts first).
func SeverityRank(severity string) int {
	switch severity {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// ComplianceReport is the result of running the ATS rule set over a
// segmented resume. Issues are ordered most severe first; the ordering
// is stable for identical input.
type ComplianceReport struct {
	Score              int               `json:"score"`
	Issues             []Issue           `json:"issues"`
	SectionStatus      map[string]string `json:"section_status"`
	HeadingSuggestions map[string]string `json:"heading_suggestions"`
}

// GapReport is the result of comparing resume vocabulary against job
// vocabulary. Keyword lists are deduplicated, case-normalized, and
// ordered by first occurrence in the job text.
type GapReport struct {
	OverallScore     float64             `json:"overall_score"`
	MatchingKeywords []string            `json:"matching_keywords"`
	MissingKeywords  []string            `json:"missing_keywords"`
	KeywordPlacement map[string]string   `json:"keyword_placement"`
	Recommendations  []string            `json:"recommendations"`
	KeywordContext   map[string][]string `json:"keyword_context,omitempty"`
}

// RewriteResult is the outcome of applying compliance fixes and keyword
// injection to a resume. KeywordsAdded is the subset of requested
// missing keywords that were actually inserted, which may be smaller
// than the requested set.
type RewriteResult struct {
	UpdatedSections *SegmentedDocument `json:"updated_sections"`
	ChangesMade     []string           `json:"changes_made"`
	KeywordsAdded   []string           `json:"keywords_added"`
}
