package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/compliance"
	"github.com/jonathan/resume-matcher/internal/docx"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the ATS compliance rules over a resume",
	Long:  "Check a resume .docx against the ATS rule set and report a 0-100 score with the issues found.",
	RunE:  runCheck,
}

var (
	checkInputFile  string
	checkOutputFile string
	checkMinSkills  int
	checkVerbose    bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkInputFile, "in", "i", "", "Path to resume .docx file (required)")
	checkCmd.Flags().StringVarP(&checkOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	checkCmd.Flags().IntVar(&checkMinSkills, "min-skills", 0, "Minimum distinct skill count before warning (default: built-in)")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = checkCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(checkInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	paragraphs, err := docx.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	doc := segmenting.Segment(paragraphs)

	cfg := compliance.DefaultConfig()
	if checkMinSkills > 0 {
		cfg.MinSkills = checkMinSkills
	}
	report := compliance.CheckWithConfig(doc, cfg)

	if checkVerbose {
		observability.NewPrinter(os.Stderr).PrintComplianceReport(report)
	}

	if err := validateArtifact("schemas/compliance_report.schema.json", report); err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if checkOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(checkOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Compliance score: %d/100 (%d issues)\n", report.Score, len(report.Issues))
	fmt.Printf("Output: %s\n", checkOutputFile)

	return nil
}
