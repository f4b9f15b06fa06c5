package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/compliance"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/spf13/cobra"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Run the full pipeline and write a tailored resume",
	Long:  "Segment the resume and job posting, run the compliance check and keyword match, rewrite the resume, and render the tailored .docx.",
	RunE:  runTailor,
}

var (
	tailorResumeFile   string
	tailorJobFile      string
	tailorJobURL       string
	tailorOutputFile   string
	tailorReportFile   string
	tailorArtifactsDir string
	tailorConfigFile   string
	tailorVerbose      bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorResumeFile, "resume", "r", "", "Path to resume .docx file")
	tailorCmd.Flags().StringVarP(&tailorJobFile, "job", "j", "", "Path to job posting text file")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch the job posting from")
	tailorCmd.Flags().StringVarP(&tailorOutputFile, "out", "o", "tailored_resume.docx", "Path to write the tailored .docx")
	tailorCmd.Flags().StringVar(&tailorReportFile, "report", "", "Optional path to write the combined reports as JSON")
	tailorCmd.Flags().StringVar(&tailorArtifactsDir, "artifacts", "", "Optional directory for the cleaned job posting and its provenance metadata")
	tailorCmd.Flags().StringVarP(&tailorConfigFile, "config", "c", "", "Path to JSON config file")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print formatted summaries of each stage")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{
		Resume:  tailorResumeFile,
		Job:     tailorJobFile,
		JobURL:  tailorJobURL,
		Output:  tailorOutputFile,
		Verbose: tailorVerbose,
	}
	if tailorConfigFile != "" {
		fileCfg, err := config.LoadConfig(tailorConfigFile)
		if err != nil {
			return err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}
	cfg.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	complianceCfg := compliance.DefaultConfig()
	if cfg.ErrorPenalty > 0 {
		complianceCfg.Weights.Error = cfg.ErrorPenalty
	}
	if cfg.WarningPenalty > 0 {
		complianceCfg.Weights.Warning = cfg.WarningPenalty
	}
	if cfg.InfoPenalty > 0 {
		complianceCfg.Weights.Info = cfg.InfoPenalty
	}
	if cfg.MinSkills > 0 {
		complianceCfg.MinSkills = cfg.MinSkills
	}

	result, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		ResumePath: cfg.Resume,
		JobPath:    cfg.Job,
		JobURL:     cfg.JobURL,
		Compliance: &complianceCfg,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == "" {
		output = "tailored_resume.docx"
	}
	if err := os.WriteFile(output, result.Output, 0644); err != nil {
		return fmt.Errorf("failed to write tailored resume: %w", err)
	}
	fmt.Printf("Tailored resume written to %s\n", output)
	fmt.Printf("Compliance score: %d/100, match score: %.1f%%, keywords added: %d\n",
		result.Compliance.Score, result.Gap.OverallScore, len(result.Rewrite.KeywordsAdded))

	if tailorReportFile != "" {
		combined := map[string]any{
			"run_id":     result.RunID.String(),
			"compliance": result.Compliance,
			"gap":        result.Gap,
			"changes":    result.Rewrite.ChangesMade,
			"keywords":   result.Rewrite.KeywordsAdded,
		}
		jsonBytes, err := json.MarshalIndent(combined, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := os.WriteFile(tailorReportFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report: %s\n", tailorReportFile)
	}

	if tailorArtifactsDir != "" {
		if err := ingestion.WriteOutput(tailorArtifactsDir, result.JobText, result.JobMeta); err != nil {
			return err
		}
		fmt.Printf("Job posting artifacts: %s\n", tailorArtifactsDir)
	}

	return nil
}
