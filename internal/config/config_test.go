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
		"resume": "resume.docx",
		"output": "out",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "resume.docx", cfg.Resume)
	assert.Equal(t, "out", cfg.Output)
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
	cfg := &Config{
		Job:    "job.txt",
		JobURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{
		Resume: filepath.Join(t.TempDir(), "missing.docx"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	resume := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(resume, []byte("stub"), 0644))

	cfg := &Config{
		JobURL: "https://example.com/job",
		Resume: resume,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Resume: "default-resume.docx",
		Rules:  "default-rules.json",
		Output: "out",
	}

	partial := Config{
		Resume: "custom-resume.docx",
		JobURL: "https://example.com/job",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-resume.docx", merged.Resume)
	assert.Equal(t, "https://example.com/job", merged.JobURL)

	// Default values should fill in empty fields
	assert.Equal(t, "default-rules.json", merged.Rules)
	assert.Equal(t, "out", merged.Output)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Job:    "job.txt",
		Output: "reports",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "job.txt", merged.Job)
	assert.Equal(t, "reports", merged.Output)
}
