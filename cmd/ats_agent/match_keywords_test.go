package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAnalysisJSON = `{
	"job_title": "Senior Data Analyst",
	"technical_skills": ["python", "sql", "tableau"],
	"required_skills": [],
	"preferred_skills": [],
	"verbatim_phrases": [],
	"company_values": [],
	"structure": {"sections": [], "responsibilities": [], "requirements": []},
	"keyword_density": [],
	"experience_requirements": []
}`

func TestMatchKeywordsCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "Missing --jd-analysis flag",
			args:        []string{"match-keywords", "--resume", "resume.txt"},
			wantError:   true,
			errorString: "required",
		},
		{
			name:        "Missing --resume flag",
			args:        []string{"match-keywords", "--jd-analysis", "analysis.json"},
			wantError:   true,
			errorString: "required",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, string(output), tt.errorString)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchKeywordsCommand_TextResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	analysisPath := filepath.Join(tmpDir, "analysis.json")
	require.NoError(t, os.WriteFile(analysisPath, []byte(testAnalysisJSON), 0644))
	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Data analyst with Python and SQL experience."), 0644))
	outputPath := filepath.Join(tmpDir, "match.json")

	cmd := exec.Command(binaryPath, "match-keywords",
		"--jd-analysis", analysisPath, "--resume", resumePath, "--out", outputPath, "--full")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", output)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Contains(t, report, "match_percentage")
	assert.Contains(t, report, "suggestions")
	assert.Contains(t, report, "grade")
}
