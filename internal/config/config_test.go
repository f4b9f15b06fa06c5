package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"job_url": "https://example.com/job",
		"output": "tailored.docx",
		"min_skills": 7,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "tailored.docx", cfg.Output)
	assert.Equal(t, 7, cfg.MinSkills)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("Engineer"), 0644))

	cfg := &Config{
		Job:    tmpFile,
		JobURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.docx"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")

	cfg = &Config{Job: "/nonexistent/job.txt"}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestValidate_BadURL(t *testing.T) {
	cfg := &Config{JobURL: "not a url"}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_NegativePenalty(t *testing.T) {
	cfg := &Config{ErrorPenalty: -1}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Output:    "out.docx",
		MinSkills: 5,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Job:       "file-job.txt",
		Output:    "file-output.docx",
		MinSkills: 6,
	}

	partial := Config{
		Job: "cli-job.txt",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Explicit values should be preserved
	assert.Equal(t, "cli-job.txt", merged.Job)

	// Default values should fill in empty fields
	assert.Equal(t, "file-output.docx", merged.Output)
	assert.Equal(t, 6, merged.MinSkills)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Resume: "resume.docx",
		Output: "out.docx",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "resume.docx", merged.Resume)
	assert.Equal(t, "out.docx", merged.Output)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RESUME_MATCHER_RESUME", "env-resume.docx")
	t.Setenv("RESUME_MATCHER_JOB", "env-job.txt")

	cfg := &Config{Resume: "explicit.docx"}
	cfg.LoadFromEnv()

	// Explicit value wins, env fills the gaps
	assert.Equal(t, "explicit.docx", cfg.Resume)
	assert.Equal(t, "env-job.txt", cfg.Job)
}
