// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume .docx file
	Job    string `json:"job,omitempty"`    // Path to job posting text file
	JobURL string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch job posting from
	Output string `json:"output,omitempty"` // Path to write the tailored resume .docx

	// Compliance scoring
	ErrorPenalty   int `json:"error_penalty,omitempty" validate:"gte=0"`
	WarningPenalty int `json:"warning_penalty,omitempty" validate:"gte=0"`
	InfoPenalty    int `json:"info_penalty,omitempty" validate:"gte=0"`
	MinSkills      int `json:"min_skills,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv fills unset fields from RESUME_MATCHER_* environment
// variables. Values already present in the config win.
func (c *Config) LoadFromEnv() {
	if c.Resume == "" {
		c.Resume = os.Getenv("RESUME_MATCHER_RESUME")
	}
	if c.Job == "" {
		c.Job = os.Getenv("RESUME_MATCHER_JOB")
	}
	if c.JobURL == "" {
		c.JobURL = os.Getenv("RESUME_MATCHER_JOB_URL")
	}
	if c.Output == "" {
		c.Output = os.Getenv("RESUME_MATCHER_OUTPUT")
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	if result.ErrorPenalty == 0 {
		result.ErrorPenalty = defaults.ErrorPenalty
	}
	if result.WarningPenalty == 0 {
		result.WarningPenalty = defaults.WarningPenalty
	}
	if result.InfoPenalty == 0 {
		result.InfoPenalty = defaults.InfoPenalty
	}
	if result.MinSkills == 0 {
		result.MinSkills = defaults.MinSkills
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
