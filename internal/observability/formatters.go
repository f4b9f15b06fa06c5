// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSegmentedDocument outputs a summary of the segmented resume.
func (p *Printer) PrintSegmentedDocument(doc *types.SegmentedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	for _, section := range doc.Sections {
		heading := section.Heading
		if heading == "" {
			heading = "(implicit)"
		}
		sb.WriteString(fmt.Sprintf("%-16s %-24s %d lines\n", section.Category, heading, len(section.Content)))
	}

	p.printBox("SEGMENTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobPosting outputs a human-readable summary of the parsed posting.
func (p *Printer) PrintJobPosting(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	if job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	}
	sb.WriteString("\n")

	for category, lines := range job.Sections {
		sb.WriteString(fmt.Sprintf("%-16s %d lines\n", category, len(lines)))
	}
	sb.WriteString(fmt.Sprintf("\nRequirement lines: %d\n", len(job.AllRequirements)))

	p.printBox("PARSED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComplianceReport outputs the ATS check result with its top issues.
func (p *Printer) PrintComplianceReport(report *types.ComplianceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", report.Score))
	sb.WriteString("\n")

	if len(report.Issues) > 0 {
		sb.WriteString("Issues:\n")
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := report.Issues[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", issue.Severity, issue.Message))
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Issues)-maxItemsToShow))
		}
	} else {
		sb.WriteString("No issues found.\n")
	}

	p.printBox("ATS COMPLIANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs the keyword gap analysis.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %.1f%%\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("Matching:    %d keywords\n", len(report.MatchingKeywords)))
	sb.WriteString(fmt.Sprintf("Missing:     %d keywords\n", len(report.MissingKeywords)))
	sb.WriteString("\n")

	if len(report.MissingKeywords) > 0 {
		sb.WriteString("Top missing:\n")
		count := min(len(report.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			keyword := report.MissingKeywords[i]
			sb.WriteString(fmt.Sprintf("  • %s → %s\n", keyword, report.KeywordPlacement[keyword]))
		}
		if len(report.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingKeywords)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRewriteResult outputs the change log of a rewrite.
func (p *Printer) PrintRewriteResult(result *types.RewriteResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keywords added: %d\n", len(result.KeywordsAdded)))
	sb.WriteString("\n")

	if len(result.ChangesMade) > 0 {
		sb.WriteString("Changes:\n")
		for _, change := range result.ChangesMade {
			sb.WriteString(fmt.Sprintf("  • %s\n", change))
		}
	} else {
		sb.WriteString("No changes made.\n")
	}

	p.printBox("REWRITE", strings.TrimSuffix(sb.String(), "\n"))
}
