package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/docx"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/jobs"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Measure the keyword gap between a resume and a job posting",
	Long:  "Compare resume vocabulary against job posting vocabulary and report matching keywords, missing keywords, placement targets, and an overall score.",
	RunE:  runMatch,
}

var (
	matchResumeFile   string
	matchJobFile      string
	matchJobURL       string
	matchOutputFile   string
	matchArtifactsDir string
	matchVerbose      bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume .docx file (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting text file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job posting from")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVar(&matchArtifactsDir, "artifacts", "", "Optional directory for the cleaned job posting and its provenance metadata")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = matchCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchJobFile == "" && matchJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if matchJobFile != "" && matchJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	raw, err := os.ReadFile(matchResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	paragraphs, err := docx.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	resume := segmenting.Segment(paragraphs)

	job, jobText, jobMeta, err := loadJobPosting(context.Background(), matchJobFile, matchJobURL, matchVerbose)
	if err != nil {
		return err
	}
	if matchArtifactsDir != "" {
		if err := ingestion.WriteOutput(matchArtifactsDir, jobText, jobMeta); err != nil {
			return err
		}
	}

	report := matching.Analyze(resume, job)

	if matchVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobPosting(job)
		printer.PrintGapReport(report)
	}

	if err := validateArtifact("schemas/gap_report.schema.json", report); err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if matchOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(matchOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Match score: %.1f%% (%d missing keywords)\n", report.OverallScore, len(report.MissingKeywords))
	fmt.Printf("Output: %s\n", matchOutputFile)

	return nil
}

// loadJobPosting builds a JobPosting from a file or a URL, returning
// the cleaned text and provenance metadata alongside it.
func loadJobPosting(ctx context.Context, jobFile, jobURL string, verbose bool) (*types.JobPosting, string, *ingestion.Metadata, error) {
	if jobURL != "" {
		fetched, err := ingestion.IngestFromURL(ctx, jobURL, verbose)
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to fetch job posting: %w", err)
		}
		job, err := jobs.FromHTML(fetched.HTML)
		if err != nil {
			return jobs.FromText(fetched.Text), fetched.Text, fetched.Metadata, nil
		}
		return job, fetched.Text, fetched.Metadata, nil
	}

	cleaned, meta, err := ingestion.IngestFromFile(jobFile)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to read job posting: %w", err)
	}
	return jobs.FromText(cleaned), cleaned, meta, nil
}
