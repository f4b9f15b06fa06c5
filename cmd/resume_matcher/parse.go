package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/docx"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Segment a resume .docx into structured sections",
	Long:  "Parse a resume .docx file, segment it into categorized sections, and write the result as JSON that validates against the segmented_document schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume .docx file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	paragraphs, err := docx.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	doc := segmenting.Segment(paragraphs)

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := validateArtifact("schemas/segmented_document.schema.json", doc); err != nil {
		return err
	}

	if parseOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Segmented %d sections\n", len(doc.Sections))
	fmt.Printf("Output: %s\n", parseOutputFile)

	return nil
}

// validateArtifact checks an artifact against its schema when the
// schema file can be found. Validation failures are fatal; a missing or
// unloadable schema only warns.
func validateArtifact(relativeSchemaPath string, value any) error {
	schemaPath := schemas.ResolveSchemaPath(relativeSchemaPath)
	if schemaPath == "" {
		return nil
	}

	err := schemas.ValidateValue(schemaPath, value)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("output does not validate against schema: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	return nil
}
