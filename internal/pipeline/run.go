// Package pipeline provides the high-level orchestration for a full
// tailoring run: segment the resume, segment the job posting, check and
// match in parallel, rewrite, render.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/compliance"
	"github.com/jonathan/resume-matcher/internal/docx"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/jobs"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/rewriting"
	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Pipeline step names used in progress events.
const (
	StepSegmentResume = "segment_resume"
	StepSegmentJob    = "segment_job"
	StepCompliance    = "compliance"
	StepMatch         = "match"
	StepRewrite       = "rewrite"
	StepRender        = "render"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath string
	JobPath    string
	JobURL     string
	Compliance *compliance.Config // nil uses defaults
	Verbose    bool
	OnProgress ProgressCallback
}

// Validate checks that the options identify exactly one resume and one
// job-posting source.
func (o *RunOptions) Validate() error {
	if o.ResumePath == "" {
		return fmt.Errorf("resume path is required")
	}
	if o.JobPath == "" && o.JobURL == "" {
		return fmt.Errorf("either a job file or a job URL is required")
	}
	if o.JobPath != "" && o.JobURL != "" {
		return fmt.Errorf("job file and job URL are mutually exclusive")
	}
	return nil
}

// Result collects every artifact a run produces. Output holds the
// rendered .docx bytes of the tailored resume; JobText and JobMeta are
// the cleaned job-posting text and its provenance record, kept so
// callers can persist them alongside the reports.
type Result struct {
	RunID      uuid.UUID
	Resume     *types.SegmentedDocument
	Job        *types.JobPosting
	JobText    string
	JobMeta    *ingestion.Metadata
	Compliance *types.ComplianceReport
	Gap        *types.GapReport
	Rewrite    *types.RewriteResult
	Output     []byte
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID uuid.UUID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}

// Run executes the full tailoring pipeline. The compliance check and
// the keyword match are independent reads of the segmented inputs, so
// they run concurrently.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New()

	// Step 1: Segment the resume
	raw, err := os.ReadFile(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("reading resume failed: %w", err)
	}
	paragraphs, err := docx.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing resume failed: %w", err)
	}
	resume := segmenting.Segment(paragraphs)
	if opts.Verbose {
		printer.PrintSegmentedDocument(resume)
	}
	emitProgress(&opts, runID, StepSegmentResume,
		fmt.Sprintf("Segmented resume into %d sections", len(resume.Sections)), nil)

	// Step 2: Segment the job posting
	job, jobText, jobMeta, err := loadJob(ctx, &opts)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		printer.PrintJobPosting(job)
	}
	emitProgress(&opts, runID, StepSegmentJob,
		fmt.Sprintf("Parsed job posting: %s", job.Title), nil)

	// Steps 3+4 in parallel: compliance check and keyword match
	complianceCfg := compliance.DefaultConfig()
	if opts.Compliance != nil {
		complianceCfg = *opts.Compliance
	}
	if err := complianceCfg.Validate(); err != nil {
		return nil, fmt.Errorf("compliance config invalid: %w", err)
	}

	var report *types.ComplianceReport
	var gap *types.GapReport
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		r := compliance.CheckWithConfig(resume, complianceCfg)
		mu.Lock()
		report = r
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		r := matching.Analyze(resume, job)
		mu.Lock()
		gap = r
		mu.Unlock()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintComplianceReport(report)
		printer.PrintGapReport(gap)
	}
	emitProgress(&opts, runID, StepCompliance,
		fmt.Sprintf("Compliance score %d with %d issues", report.Score, len(report.Issues)), report)
	emitProgress(&opts, runID, StepMatch,
		fmt.Sprintf("Match score %.1f with %d missing keywords", gap.OverallScore, len(gap.MissingKeywords)), gap)

	// Step 5: Rewrite
	rewrite := rewriting.UpdateWithConfig(resume, gap, report, complianceCfg)
	if opts.Verbose {
		printer.PrintRewriteResult(rewrite)
	}
	emitProgress(&opts, runID, StepRewrite,
		fmt.Sprintf("Applied %d changes", len(rewrite.ChangesMade)), rewrite)

	// Step 6: Render
	output, err := docx.Render(rewrite.UpdatedSections)
	if err != nil {
		return nil, fmt.Errorf("rendering resume failed: %w", err)
	}
	emitProgress(&opts, runID, StepRender,
		fmt.Sprintf("Rendered %d bytes", len(output)), nil)

	return &Result{
		RunID:      runID,
		Resume:     resume,
		Job:        job,
		JobText:    jobText,
		JobMeta:    jobMeta,
		Compliance: report,
		Gap:        gap,
		Rewrite:    rewrite,
		Output:     output,
	}, nil
}

// loadJob builds the JobPosting from whichever source the options name,
// returning the cleaned text and provenance metadata alongside it.
// URL input keeps the fetched HTML so container hints survive; file
// input is treated as plain text.
func loadJob(ctx context.Context, opts *RunOptions) (*types.JobPosting, string, *ingestion.Metadata, error) {
	if opts.JobURL != "" {
		fetched, err := ingestion.IngestFromURL(ctx, opts.JobURL, opts.Verbose)
		if err != nil {
			return nil, "", nil, fmt.Errorf("job ingestion from URL failed: %w", err)
		}
		job, err := jobs.FromHTML(fetched.HTML)
		if err != nil {
			// Degrade to the extracted text when the HTML is unusable.
			return jobs.FromText(fetched.Text), fetched.Text, fetched.Metadata, nil
		}
		return job, fetched.Text, fetched.Metadata, nil
	}

	cleaned, meta, err := ingestion.IngestFromFile(opts.JobPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("job ingestion from file failed: %w", err)
	}
	return jobs.FromText(cleaned), cleaned, meta, nil
}
