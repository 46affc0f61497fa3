package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCompatCommand_ArgsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "No document arguments",
			args:        []string{"check-compat"},
			wantError:   true,
			errorString: "requires at least 1 arg",
		},
		{
			name:        "Nonexistent document",
			args:        []string{"check-compat", "does-not-exist.docx"},
			wantError:   true,
			errorString: "failed to load",
		},
		{
			name:        "Wrong document type",
			args:        []string{"check-compat", "check_compat.go"},
			wantError:   true,
			errorString: "failed to load",
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
