// Package main provides the resume-matcher command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Analyze and tailor resumes against job postings",
	Long:  "Resume Matcher segments a resume, checks it against ATS rules, measures its keyword gap against a job posting, and rewrites it into a tailored document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
